package patient

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"atria/infras/otel"
	"atria/internal/domains/patient/model"
	"atria/internal/domains/patient/model/dto"
	"atria/internal/domains/patient/service"
	"atria/shared/constant"
	gDto "atria/shared/dto"
	"atria/shared/validator"
	"atria/transport/http/response"
)

type Handler struct {
	service service.Patient
	otel    otel.Otel
}

func New(service service.Patient, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/patients", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePatient)
		routerGroup.Get("/", handler.GetPatients)
		routerGroup.Get("/{id}", handler.GetPatientByID)
		routerGroup.Patch("/{id}", handler.UpdatePatient)
		routerGroup.Delete("/{id}", handler.DeletePatient)
	})
}

// CreatePatient handles the registration of a new patient.
// @Summary Register a new patient
// @Description Register a new patient with the provided details.
// @Tags Patient
// @Accept json
// @Produce json
// @Param request body dto.CreatePatientRequest true "Create Patient Request"
// @Success 201 {object} response.Message "Patient created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/patients [post]
// @Security BearerAuth
func (handler *Handler) CreatePatient(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePatient")
	defer scope.End()

	req := dto.CreatePatientRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create patient")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Patient created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Patient created successfully")
}

// GetPatients retrieves patients with optional filtering and pagination.
// @Summary Get all patients
// @Description Retrieve patients with optional name, email and phone filters.
// @Tags Patient
// @Accept json
// @Produce json
// @Param full_name query string false "Filter by name"
// @Param email query string false "Filter by email"
// @Param phone query string false "Filter by phone"
// @Success 200 {object} dto.GetPatientsResponse "List of patients"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/patients [get]
// @Security BearerAuth
func (handler *Handler) GetPatients(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPatients")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldFullName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldFullName),
				Table:    model.TableName,
			},
		},
	}

	if email := r.URL.Query().Get(model.FieldEmail); email != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorEq,
			Value:    email,
			Table:    model.TableName,
		})
	}

	if phone := r.URL.Query().Get(model.FieldPhone); phone != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPhone,
			Operator: gDto.FilterOperatorEq,
			Value:    phone,
			Table:    model.TableName,
		})
	}

	patients, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get patients")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Patients retrieved successfully")

	response.WithJSON(w, http.StatusOK, patients)
}

// GetPatientByID retrieves a patient by its ID.
// @Summary Get a patient by ID
// @Description Retrieve a patient by its unique identifier.
// @Tags Patient
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} dto.PatientResponse "Patient details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/patients/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPatientByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPatientByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	patient, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get patient by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Patient retrieved successfully")

	response.WithJSON(w, http.StatusOK, patient)
}

// UpdatePatient updates an existing patient by its ID.
// @Summary Update a patient by ID
// @Description Update the details of an existing patient.
// @Tags Patient
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Param request body dto.UpdatePatientRequest true "Update Patient Request"
// @Success 200 {object} response.Message "Patient updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/patients/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePatient")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePatientRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update patient")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Patient updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Patient updated successfully")
}

// DeletePatient deletes a patient by its ID.
// @Summary Delete a patient by ID
// @Description Delete a patient using its unique identifier.
// @Tags Patient
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} response.Message "Patient deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/patients/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePatient")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete patient")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Patient deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Patient deleted successfully")
}
