package dto

// RegisterRequest is the payload for POST /auth/register. Only email and
// password are mandatory; profile fields default server-side so a student can
// complete them later.
type RegisterRequest struct {
	Email            string `json:"email" binding:"required,email" example:"alumno@ejemplo.com"`
	Password         string `json:"password" binding:"required,min=6" example:"password123"`
	FullName         string `json:"fullName" example:"Juan Pérez"`
	Phone            string `json:"phone" example:"+34 600 000 000"`
	BirthDate        string `json:"birthDate" example:"2000-01-01"` // YYYY-MM-DD
	MartialArt       string `json:"martialArt" example:"taekwondo"`
	Address          string `json:"address" example:"Calle Mayor 1, Madrid"`
	EmergencyContact string `json:"emergencyContact" example:"María Pérez +34 600 111 222"`
}

// LoginRequest is the payload for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"alumno@ejemplo.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// TokenResponse carries the signed session token and its lifetime
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"3600"` // Seconds
	UserID      int64  `json:"userId" example:"1"`
	Email       string `json:"email" example:"alumno@ejemplo.com"`
	Role        string `json:"role" example:"student"`
}

// RegisterResponse pairs the session token with the freshly created profile
type RegisterResponse struct {
	Token          TokenResponse  `json:"token"`
	StudentProfile StudentSummary `json:"studentProfile"`
}

// UserProfile is the authenticated identity returned by GET /auth/profile
type UserProfile struct {
	ID        int64  `json:"id" example:"1"`
	Email     string `json:"email" example:"alumno@ejemplo.com"`
	Role      string `json:"role" example:"student"`
	StudentID *int64 `json:"studentId,omitempty" example:"7"`
}
