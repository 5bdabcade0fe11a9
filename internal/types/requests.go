package types

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// RegisterRequest is the body of POST /api/users
type RegisterRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
			validation.Length(3, 254),
		),
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(1, 150),
			validation.Match(usernamePattern).Error("username may contain only letters, digits and @/./+/-/_"),
			validation.NotIn("me").Error("username is reserved"),
		),
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 150)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 150)),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be 8-128 characters"),
		),
	)
}

// SetPasswordRequest is the body of POST /api/users/set_password
type SetPasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r SetPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword, validation.Required),
		validation.Field(&r.NewPassword,
			validation.Required,
			validation.Length(8, 128).Error("password must be 8-128 characters"),
		),
	)
}

// IngredientAmount references a catalog ingredient with a per-recipe amount
type IngredientAmount struct {
	ID     uint `json:"id"`
	Amount int  `json:"amount"`
}

func (i IngredientAmount) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.ID, validation.Required.Error("ingredient id is required")),
		validation.Field(&i.Amount,
			validation.Required.Error("amount must be at least 1"),
			validation.Min(1).Error("amount must be at least 1"),
		),
	)
}

// CreateRecipeRequest is the body of POST /api/recipes. Image is either a
// base64 data URI or an absolute http(s) URL.
type CreateRecipeRequest struct {
	Name        string             `json:"name"`
	Text        string             `json:"text"`
	CookingTime int                `json:"cooking_time"`
	Image       string             `json:"image"`
	Tags        []uint             `json:"tags"`
	Ingredients []IngredientAmount `json:"ingredients"`
}

func (r CreateRecipeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Text, validation.Required),
		validation.Field(&r.CookingTime,
			validation.Required.Error("cooking time must be at least 1 minute"),
			validation.Min(1).Error("cooking time must be at least 1 minute"),
		),
		validation.Field(&r.Image, validation.Required),
		validation.Field(&r.Tags, validation.Required.Error("at least one tag is required"), validation.By(uniqueIDs)),
		validation.Field(&r.Ingredients, validation.Required.Error("at least one ingredient is required"), validation.By(uniqueIngredients)),
	)
}

// UpdateRecipeRequest is the body of PATCH /api/recipes/{id}. Nil fields are
// left unchanged; Tags and Ingredients replace the current sets when present.
type UpdateRecipeRequest struct {
	Name        *string            `json:"name"`
	Text        *string            `json:"text"`
	CookingTime *int               `json:"cooking_time"`
	Image       *string            `json:"image"`
	Tags        []uint             `json:"tags"`
	Ingredients []IngredientAmount `json:"ingredients"`
}

func (r UpdateRecipeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Text, validation.NilOrNotEmpty),
		validation.Field(&r.CookingTime,
			validation.NilOrNotEmpty.Error("cooking time must be at least 1 minute"),
			validation.Min(1).Error("cooking time must be at least 1 minute"),
		),
		validation.Field(&r.Image, validation.NilOrNotEmpty),
		validation.Field(&r.Tags, validation.NilOrNotEmpty.Error("at least one tag is required"), validation.By(uniqueIDs)),
		validation.Field(&r.Ingredients, validation.NilOrNotEmpty.Error("at least one ingredient is required"), validation.By(uniqueIngredients)),
	)
}

// IngredientIDs returns the referenced catalog ids in request order
func IngredientIDs(items []IngredientAmount) []uint {
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func uniqueIDs(value interface{}) error {
	ids, _ := value.([]uint)
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return errors.New("ids must be unique")
		}
		seen[id] = struct{}{}
	}
	return nil
}

func uniqueIngredients(value interface{}) error {
	items, _ := value.([]IngredientAmount)
	if err := uniqueIDs(IngredientIDs(items)); err != nil {
		return errors.New("an ingredient may be listed only once")
	}
	return nil
}
