package auth

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	authmw "github.com/tonearc/artistdna/internal/auth/middleware"
	"github.com/tonearc/artistdna/internal/config"
)

// GuestLoginHandler issues a long-lived token for an anonymous user.
// The guest identity is pinned to the browser with a cookie so repeat
// visits keep the same profiling history.
func GuestLoginHandler(a *authmw.AuthService, db *sql.DB, cfg config.Config) http.HandlerFunc {
	type out struct {
		AccessToken string `json:"access_token"`
		Username    string `json:"username"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !cfg.EnableGuestAuth {
			http.Error(w, "guest auth disabled", http.StatusForbidden)
			return
		}

		if c, err := r.Cookie("adna_guest_id"); err == nil && c.Value != "" && strings.HasPrefix(c.Value, "guest|") {
			var username string
			err := db.QueryRowContext(r.Context(), `SELECT username FROM users WHERE id=$1`, c.Value).Scan(&username)
			if err == nil {
				tok, _ := a.IssueJWT(c.Value, "user")
				setGuestCookie(w, c.Value)
				_ = json.NewEncoder(w).Encode(out{AccessToken: tok, Username: username})
				return
			}
		}

		sfx := strconv.FormatInt(time.Now().UnixNano(), 36)
		userID := "guest|" + sfx
		username := "guest-" + sfx[len(sfx)-6:]

		_, _ = db.ExecContext(r.Context(), `INSERT INTO users (id, username, pass_hash, created_at)
		                VALUES ($1,$2,'',$3)`, userID, username, time.Now().Unix())

		tok, err := a.IssueJWT(userID, "user")
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		setGuestCookie(w, userID)
		_ = json.NewEncoder(w).Encode(out{AccessToken: tok, Username: username})
	}
}

func setGuestCookie(w http.ResponseWriter, userID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "adna_guest_id",
		Value:    userID,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
	})
}
