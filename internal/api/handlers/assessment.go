package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/BHa01559102-bit/hexecutioners/internal/models"
	"github.com/BHa01559102-bit/hexecutioners/internal/predictor"
	"github.com/BHa01559102-bit/hexecutioners/internal/repositories"
	"github.com/BHa01559102-bit/hexecutioners/internal/session"
	"github.com/BHa01559102-bit/hexecutioners/internal/utils"
	"github.com/BHa01559102-bit/hexecutioners/internal/web"
	"github.com/google/uuid"
)

// assessmentInput only checks that every survey answer is present;
// value coercion belongs to the predictor.
type assessmentInput struct {
	Age                        any `json:"Age" validate:"required"`
	Gender                     any `json:"Gender" validate:"required"`
	FamilyMembers              any `json:"Family_members" validate:"required"`
	DailyChoresCompletion      any `json:"Daily_chores_completion" validate:"required"`
	GroupActivities            any `json:"Group_activities_participation" validate:"required"`
	SportsOrTeamGames          any `json:"Sports_or_team_games" validate:"required"`
	ComfortTalking             any `json:"Comfort_talking" validate:"required"`
	PastProgramParticipation   any `json:"Past_program_participation" validate:"required"`
	ReasonForJoining           any `json:"reason_for_joining" validate:"required"`
	FamilySupport              any `json:"Family_support" validate:"required"`
	CommitDaily                any `json:"Commit_daily" validate:"required"`
	ComfortableTravelling      any `json:"Comfortable_travelling" validate:"required"`
	EarningMembers             any `json:"Earning_members_in_family" validate:"required"`
	HighestEducation           any `json:"Highest_education_in_family" validate:"required"`
	SevereHealthCondition      any `json:"Severe_health_condition_in_family" validate:"required"`
	ComfortableUsingTechnology any `json:"Comfortable_using_technology" validate:"required"`
	WorkExperience             any `json:"Work_experience" validate:"required"`
	PhysicalHealthCondition    any `json:"Physical_health_condition_affect_participation" validate:"required"`
	TrustInProgram             any `json:"Trust_in_program" validate:"required"`
}

// GET /assessment
func (h *Handler) AssessmentPage(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	view := web.AssessmentView{
		Questions: h.questions(),
		LoggedIn:  sess.Authenticated(),
	}

	var (
		existing *models.Assessment
		err      error
	)
	switch {
	case sess.Authenticated():
		existing, err = h.repo.GetAssessmentByUser(r.Context(), sess.UserID)
	case sess.AssessmentTicket != "":
		existing, err = h.repo.GetAssessmentByTicket(r.Context(), sess.AssessmentTicket)
	}
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		h.serverError(w, r, "assessment lookup failed", err)
		return
	}
	if existing != nil {
		view.Answers = existing.Answers()
	}

	page := h.views.NewPage(r, "assessment.title")
	page.Data = view
	h.views.Render(w, http.StatusOK, "assessment", page)
}

// questions builds the survey form from the model schema so the offered
// options always match the trained category levels.
func (h *Handler) questions() []web.Question {
	qs := make([]web.Question, 0, len(models.AssessmentFields))
	for _, field := range models.AssessmentFields {
		q := web.Question{Field: field}
		if h.schema != nil {
			for _, level := range h.schema.CategoryLevels[field] {
				q.Options = append(q.Options, level.String())
			}
		}
		qs = append(qs, q)
	}
	return qs
}

// POST /api/assessment
// SubmitAssessment godoc
// @Summary Score the screening survey
// @Description Returns the dropout-risk percentage and whether the visitor may sign up.
// @Tags Assessment
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param body body object true "Survey answers keyed by field"
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Router /api/assessment [post]
func (h *Handler) SubmitAssessment(w http.ResponseWriter, r *http.Request) {
	asJSON := utils.IsJSON(r)
	sess := session.FromContext(r.Context())

	answers, err := readAnswers(r)
	if err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid input")
		return
	}

	var input assessmentInput
	if err := remarshal(answers, &input); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if errs := h.validate.Struct(input); errs != nil {
		if asJSON {
			utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
				Success: false,
				Message: "Missing required fields",
				Errors:  errs,
			})
			return
		}
		page := h.views.NewPage(r, "assessment.title")
		page.Error = "assessment.error"
		page.Data = web.AssessmentView{Questions: h.questions(), Answers: stringAnswers(answers), LoggedIn: sess.Authenticated()}
		h.views.Render(w, http.StatusBadRequest, "assessment", page)
		return
	}

	result := h.predictor.Predict(r.Context(), answers)

	record := &models.Assessment{
		DropoutPercentage: result.Percentage,
		Eligible:          result.CanSignup,
		CompletedAt:       time.Now(),
	}
	record.SetAnswers(stringAnswers(answers))

	if sess.Authenticated() {
		record.UserID = &sess.UserID
		record.Ticket = uuid.NewString()
	} else {
		record.Ticket = h.reusableTicket(r, sess.AssessmentTicket)
	}

	if err := h.repo.SaveAssessment(r.Context(), record); err != nil {
		h.serverError(w, r, "failed to save assessment", err)
		return
	}

	if !sess.Authenticated() {
		sess.AssessmentTicket = record.Ticket
		h.saveSession(w, sess)
	}

	if asJSON {
		utils.JSONResponse(w, http.StatusOK, utils.Payload{
			Success: true,
			Message: "Assessment scored",
			Data:    result,
		})
		return
	}

	page := h.views.NewPage(r, "assessment.title")
	page.Data = web.AssessmentView{
		Questions: h.questions(),
		Answers:   record.Answers(),
		Result:    &web.AssessmentResult{Percentage: result.Percentage, CanSignup: result.CanSignup},
		LoggedIn:  sess.Authenticated(),
	}
	h.views.Render(w, http.StatusOK, "assessment", page)
}

// reusableTicket keeps the visitor's ticket unless it was already claimed
// by a signup.
func (h *Handler) reusableTicket(r *http.Request, ticket string) string {
	if ticket == "" {
		return uuid.NewString()
	}
	a, err := h.repo.GetAssessmentByTicket(r.Context(), ticket)
	if err == nil && a.UserID != nil {
		return uuid.NewString()
	}
	return ticket
}

func readAnswers(r *http.Request) (map[string]any, error) {
	if utils.IsJSON(r) {
		var answers map[string]any
		if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
			return nil, err
		}
		return answers, nil
	}
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return formValues(r), nil
}

func remarshal(src any, dst any) error {
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

// stringAnswers renders answers the way they are stored.
func stringAnswers(answers map[string]any) map[string]string {
	out := make(map[string]string, len(answers))
	for _, field := range models.AssessmentFields {
		if v, ok := answers[field]; ok && v != nil {
			out[field] = predictor.Stringify(v)
		}
	}
	return out
}
