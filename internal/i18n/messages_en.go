package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, "app.title", "Student Engagement Platform")
	message.SetString(lang, "nav.dashboard", "Dashboard")
	message.SetString(lang, "nav.games", "Games")
	message.SetString(lang, "nav.leaderboard", "Leaderboard")
	message.SetString(lang, "nav.profile", "Profile")
	message.SetString(lang, "nav.assessment", "Assessment")
	message.SetString(lang, "nav.logout", "Log out")
	message.SetString(lang, "nav.login", "Log in")
	message.SetString(lang, "nav.signup", "Sign up")
	message.SetString(lang, "nav.language", "Language")

	// Login and signup
	message.SetString(lang, "login.title", "Log in")
	message.SetString(lang, "login.username", "Username")
	message.SetString(lang, "login.password", "Password")
	message.SetString(lang, "login.submit", "Log in")
	message.SetString(lang, "login.no_account", "New here? Take the assessment to sign up.")
	message.SetString(lang, "login.google", "Sign in with Google")
	message.SetString(lang, "login.error.invalid", "Invalid username or password")
	message.SetString(lang, "login.error.google", "Google sign-in failed")
	message.SetString(lang, "login.flash.registered", "Account created. Please log in.")
	message.SetString(lang, "signup.title", "Create your account")
	message.SetString(lang, "signup.email", "Email")
	message.SetString(lang, "signup.confirm_password", "Confirm password")
	message.SetString(lang, "signup.submit", "Sign up")
	message.SetString(lang, "signup.have_account", "Already have an account? Log in.")
	message.SetString(lang, "signup.error.mismatch", "Passwords do not match")
	message.SetString(lang, "signup.error.exists", "Username or email already exists")
	message.SetString(lang, "signup.error.gate", "Please complete the assessment before signing up")
	message.SetString(lang, "signup.error.invalid", "Please check the highlighted fields")

	// Assessment
	message.SetString(lang, "assessment.title", "Readiness assessment")
	message.SetString(lang, "assessment.intro", "Answer a few questions so we can understand how to support you.")
	message.SetString(lang, "assessment.submit", "Submit")
	message.SetString(lang, "assessment.select", "Select an option")
	message.SetString(lang, "assessment.result", "Estimated dropout risk: %d%%")
	message.SetString(lang, "assessment.eligible", "You are eligible to sign up.")
	message.SetString(lang, "assessment.not_eligible", "Unfortunately you are not eligible to sign up at this time.")
	message.SetString(lang, "assessment.continue", "Continue to sign up")
	message.SetString(lang, "assessment.saved", "Your assessment has been saved.")
	message.SetString(lang, "assessment.error", "Please answer every question.")
	message.SetString(lang, "q.Age", "Age")
	message.SetString(lang, "q.Gender", "Gender")
	message.SetString(lang, "q.Family_members", "How many members are in your family?")
	message.SetString(lang, "q.Daily_chores_completion", "Do you complete your daily chores?")
	message.SetString(lang, "q.Group_activities_participation", "How do you feel about group activities?")
	message.SetString(lang, "q.Sports_or_team_games", "How much do you enjoy sports or team games? (1-5)")
	message.SetString(lang, "q.Comfort_talking", "How comfortable are you talking to new people? (1-5)")
	message.SetString(lang, "q.Past_program_participation", "Have you joined a program like this before?")
	message.SetString(lang, "q.reason_for_joining", "Do you have a clear reason for joining?")
	message.SetString(lang, "q.Family_support", "How supportive is your family?")
	message.SetString(lang, "q.Commit_daily", "Can you commit time every day?")
	message.SetString(lang, "q.Comfortable_travelling", "Are you comfortable travelling to the centre?")
	message.SetString(lang, "q.Earning_members_in_family", "How many earning members are in your family?")
	message.SetString(lang, "q.Highest_education_in_family", "Highest education in your family")
	message.SetString(lang, "q.Severe_health_condition_in_family", "Does anyone in your family have a severe health condition?")
	message.SetString(lang, "q.Comfortable_using_technology", "Are you comfortable using technology?")
	message.SetString(lang, "q.Work_experience", "Do you have work experience?")
	message.SetString(lang, "q.Physical_health_condition_affect_participation", "Would a physical health condition affect your participation?")
	message.SetString(lang, "q.Trust_in_program", "How much do you trust this program?")

	// Dashboard and games
	message.SetString(lang, "dashboard.title", "Dashboard")
	message.SetString(lang, "dashboard.welcome", "Welcome, %s!")
	message.SetString(lang, "dashboard.best", "Best score")
	message.SetString(lang, "dashboard.no_score", "Not played yet")
	message.SetString(lang, "dashboard.play", "Play")
	message.SetString(lang, "games.title", "Games")
	message.SetString(lang, "game.number_guess", "Number Guess")
	message.SetString(lang, "game.memory", "Memory Match")
	message.SetString(lang, "game.trivia", "Trivia")
	message.SetString(lang, "game.back", "Back to games")
	message.SetString(lang, "game.play_again", "Play again")
	message.SetString(lang, "game.saved", "Score saved!")
	message.SetString(lang, "game.save_failed", "Could not save your score.")
	message.SetString(lang, "number_guess.prompt", "Guess a number between 1 and 100.")
	message.SetString(lang, "number_guess.guess", "Guess")
	message.SetString(lang, "number_guess.higher", "Higher!")
	message.SetString(lang, "number_guess.lower", "Lower!")
	message.SetString(lang, "number_guess.correct", "Correct! Your score:")
	message.SetString(lang, "memory.prompt", "Find all matching pairs in as few moves as possible.")
	message.SetString(lang, "memory.moves", "Moves:")
	message.SetString(lang, "memory.done", "All pairs found! Your score:")
	message.SetString(lang, "trivia.prompt", "Answer the questions below.")
	message.SetString(lang, "trivia.submit", "Check answers")
	message.SetString(lang, "trivia.done", "Your score:")

	// Leaderboard
	message.SetString(lang, "leaderboard.title", "Leaderboard")
	message.SetString(lang, "leaderboard.rank", "Rank")
	message.SetString(lang, "leaderboard.user", "Player")
	message.SetString(lang, "leaderboard.score", "Score")
	message.SetString(lang, "leaderboard.games", "Games played")
	message.SetString(lang, "leaderboard.all_games", "All games")
	message.SetString(lang, "leaderboard.empty", "No scores yet.")

	// Profile
	message.SetString(lang, "profile.title", "Profile")
	message.SetString(lang, "profile.member_since", "Member since")
	message.SetString(lang, "profile.documents", "Documents")
	message.SetString(lang, "profile.document_type", "Document type")
	message.SetString(lang, "profile.file", "File")
	message.SetString(lang, "profile.upload", "Upload")
	message.SetString(lang, "profile.uploaded_at", "Uploaded")
	message.SetString(lang, "profile.download", "Download")
	message.SetString(lang, "profile.no_documents", "No documents uploaded yet.")
	message.SetString(lang, "profile.allowed", "Allowed: JPG, PNG, PDF up to 16 MB.")
	message.SetString(lang, "profile.assessment", "Assessment")
	message.SetString(lang, "profile.risk", "Dropout risk: %d%%")
	message.SetString(lang, "profile.retake", "Update assessment")
	message.SetString(lang, "profile.no_assessment", "No assessment on record.")
}
