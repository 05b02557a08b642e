package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/FuturFusion/security-manager/internal/securite"
	"github.com/FuturFusion/security-manager/internal/server/request"
	"github.com/FuturFusion/security-manager/internal/server/response"
	"github.com/FuturFusion/security-manager/internal/server/util"
	"github.com/FuturFusion/security-manager/internal/transaction"
	"github.com/FuturFusion/security-manager/shared/api"
)

var utilisateursCmd = APIEndpoint{
	Path: "utilisateurs",

	Get:  APIEndpointAction{Handler: utilisateursGet},
	Post: APIEndpointAction{Handler: utilisateursPost},
}

var utilisateurCmd = APIEndpoint{
	Path: "utilisateurs/{id}",

	Delete: APIEndpointAction{Handler: utilisateurDelete},
	Get:    APIEndpointAction{Handler: utilisateurGet},
	Put:    APIEndpointAction{Handler: utilisateurPut},
}

// swagger:operation GET /1.0/utilisateurs utilisateurs utilisateurs_get
//
//	Get the users
//
//	Returns a list of users (URLs).
//
//	---
//	produces:
//	  - application/json
//	parameters:
//	  - in: query
//	    name: include_expression
//	    description: Expression users have to match
//	    type: string
//	    example: actif && "READ" in droits
//	  - in: query
//	    name: profil_id
//	    description: Id of the profile of the users
//	    type: integer
//	  - in: query
//	    name: type_utilisateur
//	    description: User type code of the users
//	    type: string
//	  - in: query
//	    name: actif
//	    description: Whether the users are active
//	    type: boolean
//	  - in: query
//	    name: nom
//	    description: Part of the last name of the users
//	    type: string
//	responses:
//	  "200":
//	    description: API users
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
//	          description: List of users
//	          items:
//	            type: string
//	          example: |-
//	            [
//	              "/1.0/utilisateurs/1",
//	              "/1.0/utilisateurs/2"
//	            ]
//	  "400":
//	    $ref: "#/responses/BadRequest"
//	  "500":
//	    $ref: "#/responses/InternalServerError"

// swagger:operation GET /1.0/utilisateurs?recursion=1 utilisateurs utilisateurs_get_recursion
//
//	Get the users
//
//	Returns a list of users (structs).
//
//	---
//	produces:
//	  - application/json
//	responses:
//	  "200":
//	    description: API users
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
//	          description: List of users
//	          items:
//	            $ref: "#/definitions/UtilisateurRead"
//	  "400":
//	    $ref: "#/responses/BadRequest"
//	  "500":
//	    $ref: "#/responses/InternalServerError"
func utilisateursGet(d *Daemon, r *http.Request) response.Response {
	// Parse the recursion field.
	recursion, err := strconv.Atoi(r.FormValue("recursion"))
	if err != nil {
		recursion = 0
	}

	filter, err := utilisateurFilterFromRequest(r)
	if err != nil {
		return response.BadRequest(err)
	}

	utilisateurs, err := d.utilisateur.GetAllWithFilter(r.Context(), filter, request.QueryParam(r, "include_expression"))
	if err != nil {
		return response.SmartError(err)
	}

	if recursion == 1 {
		result := make([]api.UtilisateurRead, 0, len(utilisateurs))
		for _, utilisateur := range utilisateurs {
			read, err := securite.CreateUtilisateurRead(&utilisateur, nil)
			if err != nil {
				return response.SmartError(err)
			}

			result = append(result, *read)
		}

		return response.SyncResponse(true, result)
	}

	result := make([]string, 0, len(utilisateurs))
	for _, utilisateur := range utilisateurs {
		result = append(result, fmt.Sprintf("/%s/utilisateurs/%d", api.APIVersion, utilisateur.ID))
	}

	return response.SyncResponse(true, result)
}

func utilisateurFilterFromRequest(r *http.Request) (securite.UtilisateurFilter, error) {
	var filter securite.UtilisateurFilter

	value := request.QueryParam(r, "profil_id")
	if value != "" {
		profilID, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return securite.UtilisateurFilter{}, fmt.Errorf("Invalid profil_id %q: %w", value, err)
		}

		filter.ProfilID = &profilID
	}

	value = request.QueryParam(r, "type_utilisateur")
	if value != "" {
		code := api.TypeUtilisateurCode(value)
		err := code.Validate()
		if err != nil {
			return securite.UtilisateurFilter{}, err
		}

		filter.TypeUtilisateurCode = &code
	}

	value = request.QueryParam(r, "actif")
	if value != "" {
		actif, err := strconv.ParseBool(value)
		if err != nil {
			return securite.UtilisateurFilter{}, fmt.Errorf("Invalid actif %q: %w", value, err)
		}

		filter.Actif = &actif
	}

	value = request.QueryParam(r, "nom")
	if value != "" {
		filter.Nom = &value
	}

	return filter, nil
}

// swagger:operation POST /1.0/utilisateurs utilisateurs utilisateurs_post
//
//	Add a user
//
//	Creates a new user.
//
//	---
//	consumes:
//	  - application/json
//	produces:
//	  - application/json
//	parameters:
//	  - in: body
//	    name: utilisateur
//	    description: User configuration
//	    required: true
//	    schema:
//	      $ref: "#/definitions/UtilisateurWrite"
//	responses:
//	  "201":
//	    $ref: "#/responses/EmptySyncResponse"
//	  "400":
//	    $ref: "#/responses/BadRequest"
//	  "404":
//	    $ref: "#/responses/NotFound"
//	  "409":
//	    $ref: "#/responses/Conflict"
//	  "500":
//	    $ref: "#/responses/InternalServerError"
func utilisateursPost(d *Daemon, r *http.Request) response.Response {
	var utilisateur api.UtilisateurWrite

	err := json.NewDecoder(r.Body).Decode(&utilisateur)
	if err != nil {
		return response.BadRequest(err)
	}

	newUtilisateur, err := securite.ToUtilisateur(&utilisateur, nil)
	if err != nil {
		return response.SmartError(err)
	}

	created, err := d.utilisateur.Create(r.Context(), *newUtilisateur)
	if err != nil {
		return response.SmartError(fmt.Errorf("Failed creating user %q: %w", utilisateur.Email, err))
	}

	return response.SyncResponseLocation(true, nil, fmt.Sprintf("/%s/utilisateurs/%d", api.APIVersion, created.ID))
}

// swagger:operation DELETE /1.0/utilisateurs/{id} utilisateurs utilisateur_delete
//
//	Delete the user
//
//	Removes the user.
//
//	---
//	produces:
//	  - application/json
//	responses:
//	  "200":
//	    $ref: "#/responses/EmptySyncResponse"
//	  "400":
//	    $ref: "#/responses/BadRequest"
//	  "404":
//	    $ref: "#/responses/NotFound"
//	  "500":
//	    $ref: "#/responses/InternalServerError"
func utilisateurDelete(d *Daemon, r *http.Request) response.Response {
	id, err := request.PathID(r, "id")
	if err != nil {
		return response.BadRequest(fmt.Errorf("Invalid user id %q: %w", r.PathValue("id"), err))
	}

	err = d.utilisateur.DeleteByID(r.Context(), id)
	if err != nil {
		return response.SmartError(err)
	}

	return response.EmptySyncResponse
}

// swagger:operation GET /1.0/utilisateurs/{id} utilisateurs utilisateur_get
//
//	Get the user
//
//	Gets a specific user.
//
//	---
//	produces:
//	  - application/json
//	responses:
//	  "200":
//	    description: User
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
//	          $ref: "#/definitions/UtilisateurRead"
//	  "404":
//	    $ref: "#/responses/NotFound"
//	  "500":
//	    $ref: "#/responses/InternalServerError"
func utilisateurGet(d *Daemon, r *http.Request) response.Response {
	id, err := request.PathID(r, "id")
	if err != nil {
		return response.BadRequest(fmt.Errorf("Invalid user id %q: %w", r.PathValue("id"), err))
	}

	utilisateur, err := d.utilisateur.GetByID(r.Context(), id)
	if err != nil {
		return response.SmartError(err)
	}

	read, err := securite.CreateUtilisateurRead(utilisateur, nil)
	if err != nil {
		return response.SmartError(err)
	}

	return response.SyncResponseETag(true, read, read)
}

// swagger:operation PUT /1.0/utilisateurs/{id} utilisateurs utilisateur_put
//
//	Update the user
//
//	Updates the user definition.
//
//	---
//	consumes:
//	  - application/json
//	produces:
//	  - application/json
//	parameters:
//	  - in: body
//	    name: utilisateur
//	    description: User definition
//	    required: true
//	    schema:
//	      $ref: "#/definitions/UtilisateurWrite"
//	responses:
//	  "200":
//	    $ref: "#/responses/EmptySyncResponse"
//	  "400":
//	    $ref: "#/responses/BadRequest"
//	  "404":
//	    $ref: "#/responses/NotFound"
//	  "412":
//	    $ref: "#/responses/PreconditionFailed"
//	  "500":
//	    $ref: "#/responses/InternalServerError"
func utilisateurPut(d *Daemon, r *http.Request) response.Response {
	id, err := request.PathID(r, "id")
	if err != nil {
		return response.BadRequest(fmt.Errorf("Invalid user id %q: %w", r.PathValue("id"), err))
	}

	var utilisateur api.UtilisateurWrite

	err = json.NewDecoder(r.Body).Decode(&utilisateur)
	if err != nil {
		return response.BadRequest(err)
	}

	ctx, trans := transaction.Begin(r.Context())
	defer func() {
		_ = trans.Rollback()
	}()

	currentUtilisateur, err := d.utilisateur.GetByID(ctx, id)
	if err != nil {
		return response.SmartError(fmt.Errorf("Failed to get user %d: %w", id, err))
	}

	currentRead, err := securite.CreateUtilisateurRead(currentUtilisateur, nil)
	if err != nil {
		return response.SmartError(err)
	}

	// Validate ETag
	err = util.EtagCheck(r, currentRead)
	if err != nil {
		return response.PreconditionFailed(err)
	}

	_, err = securite.ToUtilisateur(&utilisateur, currentUtilisateur)
	if err != nil {
		return response.SmartError(err)
	}

	err = d.utilisateur.Update(ctx, currentUtilisateur)
	if err != nil {
		return response.SmartError(fmt.Errorf("Failed updating user %d: %w", id, err))
	}

	err = trans.Commit()
	if err != nil {
		return response.SmartError(fmt.Errorf("Failed commit transaction: %w", err))
	}

	return response.EmptySyncResponse
}
