package testhelpers

import (
	"fmt"
	"sync"
	"testing"

	"github.com/foodgram/backend/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const TestPassword = "correct-horse-battery"

var (
	hashOnce         sync.Once
	testPasswordHash string
	hashErr          error
)

func passwordHash(t *testing.T) string {
	hashOnce.Do(func() {
		var h []byte
		h, hashErr = bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
		testPasswordHash = string(h)
	})
	if hashErr != nil {
		t.Fatalf("hash password: %v", hashErr)
	}
	return testPasswordHash
}

// CreateUser inserts a user whose password is TestPassword
func CreateUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	u := &model.User{
		Email:        username + "@example.com",
		Username:     username,
		FirstName:    "Test",
		LastName:     username,
		PasswordHash: passwordHash(t),
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

func CreateTag(t *testing.T, db *gorm.DB, slug string) *model.Tag {
	t.Helper()
	tag := &model.Tag{Name: slug, Color: "#E26C2D", Slug: slug}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("create tag %s: %v", slug, err)
	}
	return tag
}

func CreateIngredient(t *testing.T, db *gorm.DB, name, unit string) *model.Ingredient {
	t.Helper()
	ing := &model.Ingredient{Name: name, MeasurementUnit: unit}
	if err := db.Create(ing).Error; err != nil {
		t.Fatalf("create ingredient %s: %v", name, err)
	}
	return ing
}

// Portion is an ingredient with the amount a recipe needs
type Portion struct {
	Ingredient *model.Ingredient
	Amount     int
}

// CreateRecipe inserts a recipe with its ingredient rows in the given order
func CreateRecipe(t *testing.T, db *gorm.DB, author *model.User, name string, tags []*model.Tag, portions ...Portion) *model.Recipe {
	t.Helper()
	r := &model.Recipe{
		AuthorID:    author.ID,
		Name:        name,
		Text:        fmt.Sprintf("How to cook %s.", name),
		Image:       "https://cdn.example.com/" + name + ".png",
		CookingTime: 10,
	}
	if err := db.Omit("Author", "Tags", "Ingredients").Create(r).Error; err != nil {
		t.Fatalf("create recipe %s: %v", name, err)
	}
	for _, tag := range tags {
		if err := db.Exec("INSERT INTO recipe_tags (recipe_id, tag_id) VALUES (?, ?)", r.ID, tag.ID).Error; err != nil {
			t.Fatalf("tag recipe %s: %v", name, err)
		}
	}
	for _, p := range portions {
		ri := &model.RecipeIngredient{RecipeID: r.ID, IngredientID: p.Ingredient.ID, Amount: p.Amount}
		if err := db.Omit("Ingredient").Create(ri).Error; err != nil {
			t.Fatalf("add ingredient to %s: %v", name, err)
		}
	}
	return r
}
