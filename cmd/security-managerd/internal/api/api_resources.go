package api

import (
	"bytes"
	"net/http"

	"github.com/FuturFusion/security-manager/internal/resources"
	"github.com/FuturFusion/security-manager/internal/server/request"
	"github.com/FuturFusion/security-manager/internal/server/response"
	"github.com/FuturFusion/security-manager/shared/api"
)

var resourcesCmd = APIEndpoint{
	Path: "resources",

	Get: APIEndpointAction{Handler: resourcesGet},
}

// swagger:operation GET /1.0/resources resources resources_get
//
//	Export the labels
//
//	Returns all labels of a language as a JSON document or a TypeScript
//	module.
//
//	---
//	produces:
//	  - application/json
//	parameters:
//	  - in: query
//	    name: lang
//	    description: Language of the labels
//	    type: string
//	    example: en
//	  - in: query
//	    name: format
//	    description: Export format, json (default) or ts
//	    type: string
//	    example: ts
//	responses:
//	  "200":
//	    description: Exported labels
//	    schema:
//	      type: object
//	      description: Sync response
//	      properties:
//	        type:
//	          type: string
//	          description: Response type
//	          example: sync
//	        status:
//	          type: string
//	          description: Status description
//	          example: Success
//	        status_code:
//	          type: integer
//	          description: Status code
//	          example: 200
//	        metadata:
//	          $ref: "#/definitions/Resources"
//	  "400":
//	    $ref: "#/responses/BadRequest"
//	  "500":
//	    $ref: "#/responses/InternalServerError"
func resourcesGet(d *Daemon, r *http.Request) response.Response {
	format, err := resources.ParseFormat(request.QueryParam(r, "format"))
	if err != nil {
		return response.BadRequest(err)
	}

	lang := requestLanguage(d, r)

	buf := &bytes.Buffer{}
	err = d.translator.Export(buf, lang, format)
	if err != nil {
		return response.SmartError(err)
	}

	return response.SyncResponse(true, api.Resources{
		Language: lang.String(),
		Format:   string(format),
		Content:  buf.String(),
	})
}
