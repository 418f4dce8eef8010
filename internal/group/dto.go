package group

// NewMember describes a member to add when creating a group.
type NewMember struct {
	Name      string  `json:"name" validate:"required,min=1,max=100"`
	AvatarRef *string `json:"avatar_ref,omitempty"`
}

// CreateGroupRequest represents the request to create a group
type CreateGroupRequest struct {
	Name     string       `json:"name" validate:"required,min=1,max=255"`
	Type     string       `json:"type" validate:"required"`
	Currency string       `json:"currency" validate:"required,len=3"`
	Members  []*NewMember `json:"members,omitempty"`
}

// UpdateGroupRequest represents the request to update a group
type UpdateGroupRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Type     *string `json:"type,omitempty"`
	Currency *string `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// AddMemberRequest represents the request to add a member to a group
type AddMemberRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=100"`
	AvatarRef *string `json:"avatar_ref,omitempty"`
}
