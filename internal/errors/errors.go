package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeInput         ErrorType = "INPUT"
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeVCS           ErrorType = "VCS"
	TypeAI            ErrorType = "AI"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if url, ok := e.Context["url"].(string); ok && url != "" {
			msg += fmt.Sprintf(" - %s", url)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError of the same kind. Derived errors
// built with WithError/WithContext still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Input errors
var (
	ErrInvalidPRURL = NewAppError(TypeInput, "Invalid GitHub PR URL", nil).
			WithSuggestion("Use the form: https://github.com/<owner>/<repo>/pull/<number>")

	ErrNoPRURLs = NewAppError(TypeInput, "No pull request URL given", nil).
			WithSuggestion("Pass at least one URL: devquest score https://github.com/<owner>/<repo>/pull/<number>")

	ErrUnsupportedFormat = NewAppError(TypeInput, "Unsupported output format", nil).
				WithSuggestion("Use one of: text, json, yaml")
)

// Configuration errors
var (
	ErrAPIKeyMissing = NewAppError(TypeConfiguration, "AI API key is missing", nil).
				WithSuggestion("Run: devquest config set-gemini-key <key>")

	ErrTokenMissing = NewAppError(TypeConfiguration, "GitHub token is missing", nil).
			WithSuggestion("Run: devquest config set-token <token>")

	ErrInvalidConfig = NewAppError(TypeConfiguration, "Configuration is invalid", nil).
				WithSuggestion("Inspect it with: devquest config show")
)

// GitHub/VCS errors
var (
	ErrPullRequestNotFound = NewAppError(TypeVCS, "pull request not found", nil).
				WithSuggestion("Check the URL and that your token can read the repository")

	ErrGitHubTokenInvalid = NewAppError(TypeVCS, "GitHub token is invalid or expired", nil).
				WithSuggestion("Generate a new token at: https://github.com/settings/tokens\nThen run: devquest config set-token <token>")

	ErrGitHubRateLimit = NewAppError(TypeVCS, "GitHub API rate limit exceeded", nil).
				WithSuggestion("Wait a few minutes or use a personal access token for higher limits")

	ErrVCSNotConfigured = NewAppError(TypeVCS, "GitHub client is not configured", nil).
				WithSuggestion("Run: devquest config set-token <token>")
)

// AI errors
var (
	ErrAIGeneration = NewAppError(TypeAI, "AI generation failed", nil).
			WithSuggestion("Try again or check your API key configuration")

	ErrGeminiAPIKeyInvalid = NewAppError(TypeAI, "Gemini API key is invalid", nil).
				WithSuggestion("Get a valid API key at: https://aistudio.google.com/app/apikey\nThen run: devquest config set-gemini-key <key>")

	ErrGeminiQuotaExceeded = NewAppError(TypeAI, "Gemini API quota exceeded", nil).
				WithSuggestion("Wait for quota to reset or upgrade your Gemini plan")

	ErrEmptyAIOutput = NewAppError(TypeAI, "AI returned an empty response", nil).
				WithSuggestion("This is likely a temporary issue, please try again")
)

// Internal errors
var (
	ErrCacheUnavailable = NewAppError(TypeInternal, "Score cache is unavailable", nil)
)
