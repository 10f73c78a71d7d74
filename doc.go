/*
Package textapi contains the request machinery shared by the service
clients in packages naturallanguageclassifierv1 and toneanalyzerv3.

Every endpoint of a service is described by an Operation: HTTP method,
path template, required parameters and a table saying where each named
parameter goes.

	var classify = &textapi.Operation{
		ServiceName:    "natural_language_classifier",
		ServiceVersion: "V1",
		Name:           "classify",
		Method:         http.MethodPost,
		Path:           "/v1/classifiers/{classifier_id}/classify",
		Required:       []string{"classifierId", "text"},
		Fields: []textapi.Field{
			{Param: "classifierId", Location: textapi.InPath, Name: "classifier_id"},
			{Param: "text", Location: textapi.InBody, Name: "text"},
		},
	}

Operations of a service are declared once with MustOperations, which panics
on inconsistent tables, and are shared read-only by all calls.

A call supplies Params. Build checks that every required parameter is
present and assembles a Request:

	params := textapi.NewParams().
		Set("classifierId", "c1").
		Set("text", "hello").
		SetHeaders(map[string]string{"X-Trace": "42"})
	req, err := classify.Build(params)
	// req.Method == "POST"
	// req.Path == "/v1/classifiers/c1/classify"
	// req.Body == map[string]interface{}{"text": "hello"}

If parameters are missing, Build returns *errors.MissingParametersError and
nothing is sent. Headers given by the caller override computed ones,
including Accept and Content-Type.

BaseService hands requests to a Transport. Request waits for the response,
RequestAsync returns a Future which can be waited on or given a callback.
Both report a missing parameter the same way: as an error, never a panic.

The default transport is HTTPTransport. Its HTTP client can be replaced
with CustomClient, for example with the decorators from packages
closingclient, debugclient and metricsclient.

Service URL and credentials can be read from the environment or from an
ibm-credentials.env file, see GetServiceProperties.
*/
package textapi
