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

var profilsCmd = APIEndpoint{
	Path: "profils",

	Get:  APIEndpointAction{Handler: profilsGet},
	Post: APIEndpointAction{Handler: profilsPost},
}

var profilCmd = APIEndpoint{
	Path: "profils/{id}",

	Delete: APIEndpointAction{Handler: profilDelete},
	Get:    APIEndpointAction{Handler: profilGet},
	Put:    APIEndpointAction{Handler: profilPut},
}

// swagger:operation GET /1.0/profils profils profils_get
//
//	Get the profiles
//
//	Returns a list of profiles (URLs).
//
//	---
//	produces:
//	  - application/json
//	responses:
//	  "200":
//	    description: API profiles
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
//	          description: List of profiles
//	          items:
//	            type: string
//	          example: |-
//	            [
//	              "/1.0/profils/1",
//	              "/1.0/profils/2"
//	            ]
//	  "500":
//	    $ref: "#/responses/InternalServerError"

// swagger:operation GET /1.0/profils?recursion=1 profils profils_get_recursion
//
//	Get the profiles
//
//	Returns a list of profiles (structs).
//
//	---
//	produces:
//	  - application/json
//	responses:
//	  "200":
//	    description: API profiles
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
//	          description: List of profiles
//	          items:
//	            $ref: "#/definitions/ProfilRead"
//	  "500":
//	    $ref: "#/responses/InternalServerError"
func profilsGet(d *Daemon, r *http.Request) response.Response {
	// Parse the recursion field.
	recursion, err := strconv.Atoi(r.FormValue("recursion"))
	if err != nil {
		recursion = 0
	}

	profils, err := d.profil.GetAll(r.Context())
	if err != nil {
		return response.SmartError(err)
	}

	if recursion == 1 {
		result := make([]api.ProfilRead, 0, len(profils))
		for _, profil := range profils {
			read, err := securite.CreateProfilRead(&profil, nil)
			if err != nil {
				return response.SmartError(err)
			}

			result = append(result, *read)
		}

		return response.SyncResponse(true, result)
	}

	result := make([]string, 0, len(profils))
	for _, profil := range profils {
		result = append(result, fmt.Sprintf("/%s/profils/%d", api.APIVersion, profil.ID))
	}

	return response.SyncResponse(true, result)
}

// swagger:operation POST /1.0/profils profils profils_post
//
//	Add a profile
//
//	Creates a new profile.
//
//	---
//	consumes:
//	  - application/json
//	produces:
//	  - application/json
//	parameters:
//	  - in: body
//	    name: profil
//	    description: Profile configuration
//	    required: true
//	    schema:
//	      $ref: "#/definitions/ProfilWrite"
//	responses:
//	  "201":
//	    $ref: "#/responses/EmptySyncResponse"
//	  "400":
//	    $ref: "#/responses/BadRequest"
//	  "500":
//	    $ref: "#/responses/InternalServerError"
func profilsPost(d *Daemon, r *http.Request) response.Response {
	var profil api.ProfilWrite

	err := json.NewDecoder(r.Body).Decode(&profil)
	if err != nil {
		return response.BadRequest(err)
	}

	newProfil, err := securite.ToProfilFromWrite(&profil, nil)
	if err != nil {
		return response.SmartError(err)
	}

	created, err := d.profil.Create(r.Context(), *newProfil)
	if err != nil {
		return response.SmartError(fmt.Errorf("Failed creating profile %q: %w", profil.Libelle, err))
	}

	return response.SyncResponseLocation(true, nil, fmt.Sprintf("/%s/profils/%d", api.APIVersion, created.ID))
}

// swagger:operation DELETE /1.0/profils/{id} profils profil_delete
//
//	Delete the profile
//
//	Removes the profile. A profile still assigned to users can not be removed.
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
//	  "409":
//	    $ref: "#/responses/Conflict"
//	  "500":
//	    $ref: "#/responses/InternalServerError"
func profilDelete(d *Daemon, r *http.Request) response.Response {
	id, err := request.PathID(r, "id")
	if err != nil {
		return response.BadRequest(fmt.Errorf("Invalid profile id %q: %w", r.PathValue("id"), err))
	}

	err = d.profil.DeleteByID(r.Context(), id)
	if err != nil {
		return response.SmartError(err)
	}

	return response.EmptySyncResponse
}

// swagger:operation GET /1.0/profils/{id} profils profil_get
//
//	Get the profile
//
//	Gets a specific profile.
//
//	---
//	produces:
//	  - application/json
//	responses:
//	  "200":
//	    description: Profile
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
//	          $ref: "#/definitions/ProfilRead"
//	  "404":
//	    $ref: "#/responses/NotFound"
//	  "500":
//	    $ref: "#/responses/InternalServerError"
func profilGet(d *Daemon, r *http.Request) response.Response {
	id, err := request.PathID(r, "id")
	if err != nil {
		return response.BadRequest(fmt.Errorf("Invalid profile id %q: %w", r.PathValue("id"), err))
	}

	profil, err := d.profil.GetByID(r.Context(), id)
	if err != nil {
		return response.SmartError(err)
	}

	read, err := securite.CreateProfilRead(profil, nil)
	if err != nil {
		return response.SmartError(err)
	}

	return response.SyncResponseETag(true, read, read)
}

// swagger:operation PUT /1.0/profils/{id} profils profil_put
//
//	Update the profile
//
//	Updates the label and the rights of the profile.
//
//	---
//	consumes:
//	  - application/json
//	produces:
//	  - application/json
//	parameters:
//	  - in: body
//	    name: profil
//	    description: Profile definition
//	    required: true
//	    schema:
//	      $ref: "#/definitions/ProfilWrite"
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
func profilPut(d *Daemon, r *http.Request) response.Response {
	id, err := request.PathID(r, "id")
	if err != nil {
		return response.BadRequest(fmt.Errorf("Invalid profile id %q: %w", r.PathValue("id"), err))
	}

	var profil api.ProfilWrite

	err = json.NewDecoder(r.Body).Decode(&profil)
	if err != nil {
		return response.BadRequest(err)
	}

	ctx, trans := transaction.Begin(r.Context())
	defer func() {
		_ = trans.Rollback()
	}()

	currentProfil, err := d.profil.GetByID(ctx, id)
	if err != nil {
		return response.SmartError(fmt.Errorf("Failed to get profile %d: %w", id, err))
	}

	currentRead, err := securite.CreateProfilRead(currentProfil, nil)
	if err != nil {
		return response.SmartError(err)
	}

	// Validate ETag
	err = util.EtagCheck(r, currentRead)
	if err != nil {
		return response.PreconditionFailed(err)
	}

	_, err = securite.ToProfilFromWrite(&profil, currentProfil)
	if err != nil {
		return response.SmartError(err)
	}

	err = d.profil.Update(ctx, currentProfil)
	if err != nil {
		return response.SmartError(fmt.Errorf("Failed updating profile %d: %w", id, err))
	}

	err = trans.Commit()
	if err != nil {
		return response.SmartError(fmt.Errorf("Failed commit transaction: %w", err))
	}

	return response.EmptySyncResponse
}
