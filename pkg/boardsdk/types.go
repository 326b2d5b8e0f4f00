package boardsdk

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ValidationErrorResponse is returned with 422. Submitted echoes the request
// so a form can be shown again with the values the user typed.
type ValidationErrorResponse struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	Submitted any               `json:"submitted,omitempty"`
}

// ============================================================================
// Session
// ============================================================================

type LoginRequest struct {
	Email    string `json:"email" validate:"required,max=256"`
	Password string `json:"password" validate:"required,max=1024"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

// MeResponse describes the signed-in user and what they may do.
type MeResponse struct {
	UserID       string   `json:"user_id"`
	Email        string   `json:"email"`
	Handle       string   `json:"handle"`
	Role         string   `json:"role"`
	Capabilities []string `json:"capabilities"`
}

// ============================================================================
// Posts and comments
// ============================================================================

type Post struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Body     string  `json:"body"`
	VideoID  *string `json:"video_id,omitempty"`
	Module   string  `json:"module"`
	Author   string  `json:"author"`
	PostedAt string  `json:"posted_at"` // dd/MM/yy HH:mm, server local time
	Version  int64   `json:"version"`
}

type Comment struct {
	ID       string `json:"id"`
	PostID   string `json:"post_id"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	PostedAt string `json:"posted_at"`
}

type PostDetail struct {
	Post     Post      `json:"post"`
	Comments []Comment `json:"comments"`
}

type ListPostsResponse struct {
	Posts  []Post `json:"posts"`
	Module string `json:"module,omitempty"`
	Search string `json:"search,omitempty"`
}

type ModulesResponse struct {
	Modules []string `json:"modules"`
}

// PostRequest creates or edits a post. ModuleSelection is the module picker
// value and always replaces Module. ID and Version are required for edits.
type PostRequest struct {
	ID              string  `json:"id,omitempty" validate:"omitempty,max=64"`
	Title           string  `json:"title" validate:"max=512"`
	Body            string  `json:"body" validate:"max=65536"`
	Module          string  `json:"module,omitempty" validate:"max=64"`
	ModuleSelection string  `json:"module_selection" validate:"max=64"`
	VideoLink       *string `json:"video_link,omitempty" validate:"omitempty,max=2048"`
	Version         int64   `json:"version,omitempty" validate:"gte=0"`
}

// EditPostResponse is a post prepared for the edit form.
type EditPostResponse struct {
	Post      Post   `json:"post"`
	VideoLink string `json:"video_link"`
}

type CommentRequest struct {
	Content string `json:"content" validate:"max=8192"`
}

// ============================================================================
// Roles
// ============================================================================

type UserRole struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type UserRolesResponse struct {
	Users      []UserRole `json:"users"`
	Assignable []string   `json:"assignable"` // emails offered in the role form
	Roles      []string   `json:"roles"`
}

type RoleChangeRequest struct {
	Email string `json:"email" validate:"required,max=256"`
	Role  string `json:"role" validate:"required,oneof=Member Customer"`
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
