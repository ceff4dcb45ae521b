package handlers

import (
	"encoding/json"

	"github.com/valyala/fasthttp"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	dbpkg "f1predictor/internal/db"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new player account. No session or token is issued;
// the frontend remembers the username itself.
func Register(db *gorm.DB) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		var creds credentials
		if err := json.Unmarshal(ctx.PostBody(), &creds); err != nil {
			jsonErr(ctx, fasthttp.StatusBadRequest, "Invalid JSON.")
			return
		}
		if creds.Username == "" || creds.Password == "" {
			jsonErr(ctx, fasthttp.StatusOK, "All fields are required.")
			return
		}
		if len(creds.Username) < 3 {
			jsonErr(ctx, fasthttp.StatusOK, "Username must be at least 3 characters.")
			return
		}

		var count int64
		if err := db.Model(&dbpkg.User{}).Where("username = ?", creds.Username).Count(&count).Error; err != nil {
			jsonErr(ctx, fasthttp.StatusInternalServerError, "database error")
			return
		}
		if count > 0 {
			jsonErr(ctx, fasthttp.StatusOK, "Username already taken.")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
		if err != nil {
			jsonErr(ctx, fasthttp.StatusInternalServerError, "failed to hash password")
			return
		}

		user := &dbpkg.User{Username: creds.Username, PasswordHash: string(hash)}
		if err := db.Create(user).Error; err != nil {
			jsonErr(ctx, fasthttp.StatusInternalServerError, "database error")
			return
		}

		jsonOK(ctx, nil)
	}
}

// Login verifies a username/password pair.
func Login(db *gorm.DB) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		var creds credentials
		if err := json.Unmarshal(ctx.PostBody(), &creds); err != nil {
			jsonErr(ctx, fasthttp.StatusBadRequest, "Invalid JSON.")
			return
		}
		if creds.Username == "" || creds.Password == "" {
			jsonErr(ctx, fasthttp.StatusOK, "All fields are required.")
			return
		}

		var user dbpkg.User
		if err := db.Where("username = ?", creds.Username).First(&user).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				jsonErr(ctx, fasthttp.StatusOK, "Invalid username or password.")
				return
			}
			jsonErr(ctx, fasthttp.StatusInternalServerError, "database error")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
			jsonErr(ctx, fasthttp.StatusOK, "Invalid username or password.")
			return
		}

		jsonOK(ctx, nil)
	}
}
