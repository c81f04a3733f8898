package users

// User is the canonical account record. The JSON field names are camelCase
// so an exported store can be fed straight back to browser clients.
type User struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	Gender       string `json:"gender"`
	ProfileImage string `json:"profileImage,omitempty"`
	JoinDate     string `json:"joinDate"`

	// PasswordHash is persisted but never leaves the service; login does not
	// consult it yet.
	PasswordHash string `json:"passwordHash,omitempty"`
}

// Clone returns an independent copy, used wherever a snapshot rather than a
// reference is required.
func (u User) Clone() User {
	return u
}

// UserDTO is the transport shape that omits credentials.
type UserDTO struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	Gender       string `json:"gender"`
	ProfileImage string `json:"profileImage,omitempty"`
	JoinDate     string `json:"joinDate"`
}

func FromModel(u *User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:           u.ID,
		FullName:     u.FullName,
		Username:     u.Username,
		Email:        u.Email,
		Phone:        u.Phone,
		Location:     u.Location,
		Gender:       u.Gender,
		ProfileImage: u.ProfileImage,
		JoinDate:     u.JoinDate,
	}
}
