package api

import (
	"net/http"

	"github.com/FuturFusion/security-manager/internal/server/response"
	"github.com/FuturFusion/security-manager/internal/version"
	"github.com/FuturFusion/security-manager/shared/api"
)

var api10Cmd = APIEndpoint{
	Get: APIEndpointAction{Handler: api10Get},
}

var api10 = []APIEndpoint{
	api10Cmd,
	profilCmd,
	profilsCmd,
	referenceCmd,
	referencesCmd,
	resourcesCmd,
	utilisateurCmd,
	utilisateursCmd,
}

// swagger:operation GET /1.0 server server_get
//
//	Get the server environment
//
//	Shows a small subset of the server environment and configuration.
//
//	---
//	produces:
//	  - application/json
//	responses:
//	  "200":
//	    description: Server environment and configuration
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
//	          $ref: "#/definitions/ServerUntrusted"
func api10Get(d *Daemon, r *http.Request) response.Response {
	srv := api.ServerUntrusted{
		APIStatus:     api.APIStatus,
		APIVersion:    api.APIVersion,
		ServerVersion: version.Version,
		Languages:     d.translator.Languages(),
	}

	return response.SyncResponseETag(true, srv, nil)
}
