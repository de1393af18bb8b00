package models

import (
	"time"
)

// Survey answer keys, as submitted by the assessment form.
const (
	FieldAge                        = "Age"
	FieldGender                     = "Gender"
	FieldFamilyMembers              = "Family_members"
	FieldDailyChoresCompletion      = "Daily_chores_completion"
	FieldGroupActivities            = "Group_activities_participation"
	FieldSportsOrTeamGames          = "Sports_or_team_games"
	FieldComfortTalking             = "Comfort_talking"
	FieldPastProgramParticipation   = "Past_program_participation"
	FieldReasonForJoining           = "reason_for_joining"
	FieldFamilySupport              = "Family_support"
	FieldCommitDaily                = "Commit_daily"
	FieldComfortableTravelling      = "Comfortable_travelling"
	FieldEarningMembers             = "Earning_members_in_family"
	FieldHighestEducation           = "Highest_education_in_family"
	FieldSevereHealthCondition      = "Severe_health_condition_in_family"
	FieldComfortableUsingTechnology = "Comfortable_using_technology"
	FieldWorkExperience             = "Work_experience"
	FieldPhysicalHealthCondition    = "Physical_health_condition_affect_participation"
	FieldTrustInProgram             = "Trust_in_program"
)

// AssessmentFields lists every survey answer key in form order.
var AssessmentFields = []string{
	FieldAge,
	FieldGender,
	FieldFamilyMembers,
	FieldDailyChoresCompletion,
	FieldGroupActivities,
	FieldSportsOrTeamGames,
	FieldComfortTalking,
	FieldPastProgramParticipation,
	FieldReasonForJoining,
	FieldFamilySupport,
	FieldCommitDaily,
	FieldComfortableTravelling,
	FieldEarningMembers,
	FieldHighestEducation,
	FieldSevereHealthCondition,
	FieldComfortableUsingTechnology,
	FieldWorkExperience,
	FieldPhysicalHealthCondition,
	FieldTrustInProgram,
}

// Assessment is the screening survey of one visitor or user.
// Rows written before signup have a nil UserID and are found by Ticket.
type Assessment struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	UserID *uint  `json:"userId,omitempty" gorm:"uniqueIndex"`
	User   *User  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Ticket string `json:"-" gorm:"uniqueIndex;not null"`

	Age                        string `json:"Age"`
	Gender                     string `json:"Gender"`
	FamilyMembers              string `json:"Family_members"`
	DailyChoresCompletion      string `json:"Daily_chores_completion"`
	GroupActivities            string `json:"Group_activities_participation"`
	SportsOrTeamGames          string `json:"Sports_or_team_games"`
	ComfortTalking             string `json:"Comfort_talking"`
	PastProgramParticipation   string `json:"Past_program_participation"`
	ReasonForJoining           string `json:"reason_for_joining"`
	FamilySupport              string `json:"Family_support"`
	CommitDaily                string `json:"Commit_daily"`
	ComfortableTravelling      string `json:"Comfortable_travelling"`
	EarningMembers             string `json:"Earning_members_in_family"`
	HighestEducation           string `json:"Highest_education_in_family"`
	SevereHealthCondition      string `json:"Severe_health_condition_in_family"`
	ComfortableUsingTechnology string `json:"Comfortable_using_technology"`
	WorkExperience             string `json:"Work_experience"`
	PhysicalHealthCondition    string `json:"Physical_health_condition_affect_participation"`
	TrustInProgram             string `json:"Trust_in_program"`

	DropoutPercentage int       `json:"dropoutPercentage"`
	Eligible          bool      `json:"eligible"`
	CompletedAt       time.Time `json:"completedAt"`
	CreatedAt         time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt         time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (a *Assessment) answerFields() map[string]*string {
	return map[string]*string{
		FieldAge:                        &a.Age,
		FieldGender:                     &a.Gender,
		FieldFamilyMembers:              &a.FamilyMembers,
		FieldDailyChoresCompletion:      &a.DailyChoresCompletion,
		FieldGroupActivities:            &a.GroupActivities,
		FieldSportsOrTeamGames:          &a.SportsOrTeamGames,
		FieldComfortTalking:             &a.ComfortTalking,
		FieldPastProgramParticipation:   &a.PastProgramParticipation,
		FieldReasonForJoining:           &a.ReasonForJoining,
		FieldFamilySupport:              &a.FamilySupport,
		FieldCommitDaily:                &a.CommitDaily,
		FieldComfortableTravelling:      &a.ComfortableTravelling,
		FieldEarningMembers:             &a.EarningMembers,
		FieldHighestEducation:           &a.HighestEducation,
		FieldSevereHealthCondition:      &a.SevereHealthCondition,
		FieldComfortableUsingTechnology: &a.ComfortableUsingTechnology,
		FieldWorkExperience:             &a.WorkExperience,
		FieldPhysicalHealthCondition:    &a.PhysicalHealthCondition,
		FieldTrustInProgram:             &a.TrustInProgram,
	}
}

// SetAnswers copies the known keys of answers onto the row, ignoring the rest.
func (a *Assessment) SetAnswers(answers map[string]string) {
	fields := a.answerFields()
	for key, value := range answers {
		if dst, ok := fields[key]; ok {
			*dst = value
		}
	}
}

// Answers returns the stored answers keyed by survey field.
func (a *Assessment) Answers() map[string]string {
	fields := a.answerFields()
	out := make(map[string]string, len(fields))
	for key, src := range fields {
		out[key] = *src
	}
	return out
}
