package api

import (
	"fmt"
	"net/http"

	"golang.org/x/text/language"

	"github.com/FuturFusion/security-manager/internal/server/request"
	"github.com/FuturFusion/security-manager/internal/server/response"
	"github.com/FuturFusion/security-manager/shared/api"
)

var referencesCmd = APIEndpoint{
	Path: "references",

	Get: APIEndpointAction{Handler: referencesGet},
}

var referenceCmd = APIEndpoint{
	Path: "references/{kind}",

	Get: APIEndpointAction{Handler: referenceGet},
}

// Kinds of reference lists.
const (
	referenceTypeDroits       = "type-droits"
	referenceDroits           = "droits"
	referenceTypeUtilisateurs = "type-utilisateurs"
)

// requestLanguage returns the language labels are translated to. The lang
// query parameter has precedence over the Accept-Language header.
func requestLanguage(d *Daemon, r *http.Request) language.Tag {
	return d.translator.Match(request.QueryParam(r, "lang"), r.Header.Get("Accept-Language"))
}

// swagger:operation GET /1.0/references references references_get
//
//	Get the reference lists
//
//	Returns the reference lists (URLs).
//
//	---
//	produces:
//	  - application/json
//	responses:
//	  "200":
//	    description: API reference lists
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
//	          type: array
//	          description: List of reference lists
//	          items:
//	            type: string
//	          example: |-
//	            [
//	              "/1.0/references/droits",
//	              "/1.0/references/type-droits",
//	              "/1.0/references/type-utilisateurs"
//	            ]
func referencesGet(d *Daemon, r *http.Request) response.Response {
	result := make([]string, 0, 3)
	for _, kind := range []string{referenceDroits, referenceTypeDroits, referenceTypeUtilisateurs} {
		result = append(result, fmt.Sprintf("/%s/references/%s", api.APIVersion, kind))
	}

	return response.SyncResponse(true, result)
}

// swagger:operation GET /1.0/references/{kind} references reference_get
//
//	Get a reference list
//
//	Returns the rows of a reference list with labels translated to the
//	language selected by the lang query parameter or the Accept-Language
//	header.
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
//	responses:
//	  "200":
//	    description: Reference list
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
//	          type: array
//	          description: Rows of the reference list
//	  "404":
//	    $ref: "#/responses/NotFound"
//	  "500":
//	    $ref: "#/responses/InternalServerError"
func referenceGet(d *Daemon, r *http.Request) response.Response {
	lang := requestLanguage(d, r)
	kind := r.PathValue("kind")

	switch kind {
	case referenceTypeDroits:
		typeDroits, err := d.reference.GetTypeDroits(r.Context())
		if err != nil {
			return response.SmartError(err)
		}

		result := make([]api.TypeDroit, 0, len(typeDroits))
		for _, typeDroit := range typeDroits {
			result = append(result, api.TypeDroit{
				Code:     typeDroit.Code,
				Libelle:  d.translator.Translate(lang, typeDroit.Libelle),
				Resource: typeDroit.Libelle,
			})
		}

		return response.SyncResponse(true, result)

	case referenceDroits:
		droits, err := d.reference.GetDroits(r.Context())
		if err != nil {
			return response.SmartError(err)
		}

		result := make([]api.Droit, 0, len(droits))
		for _, droit := range droits {
			result = append(result, api.Droit{
				Code:          droit.Code,
				Libelle:       d.translator.Translate(lang, droit.Libelle),
				Resource:      droit.Libelle,
				TypeDroitCode: droit.TypeDroit.Code,
			})
		}

		return response.SyncResponse(true, result)

	case referenceTypeUtilisateurs:
		typeUtilisateurs, err := d.reference.GetTypeUtilisateurs(r.Context())
		if err != nil {
			return response.SmartError(err)
		}

		result := make([]api.TypeUtilisateur, 0, len(typeUtilisateurs))
		for _, typeUtilisateur := range typeUtilisateurs {
			result = append(result, api.TypeUtilisateur{
				Code:     typeUtilisateur.Code,
				Libelle:  d.translator.Translate(lang, typeUtilisateur.Libelle),
				Resource: typeUtilisateur.Libelle,
			})
		}

		return response.SyncResponse(true, result)
	}

	return response.NotFound(fmt.Errorf("Unknown reference list %q", kind))
}
