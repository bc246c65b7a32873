package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewAccessToken(t *testing.T) {
	at, err := NewAccessToken("secret", 60)
	if err != nil {
		t.Fatal(err)
	}
	tok, err := jwt.Parse(at.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["role"] != AdminRole {
		t.Fatalf("role = %v", claims["role"])
	}
	if jti, _ := claims["jti"].(string); len(jti) != 32 {
		t.Fatalf("jti = %v", claims["jti"])
	}
	if until := time.Until(at.Exp); until < 59*time.Minute || until > 61*time.Minute {
		t.Fatalf("expiry %v not around an hour away", at.Exp)
	}
}

func TestRefreshTokensAreUniqueAndHashed(t *testing.T) {
	a, err := NewRefreshToken(7)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewRefreshToken(7)
	if err != nil {
		t.Fatal(err)
	}
	if a.Raw == b.Raw {
		t.Fatal("two refresh tokens are identical")
	}
	if len(a.Raw) != 96 {
		t.Fatalf("raw length = %d, want 96", len(a.Raw))
	}
	if h := HashRefreshRaw(a.Raw); len(h) != 64 || h == a.Raw {
		t.Fatalf("hash = %q", h)
	}
	if HashRefreshRaw(a.Raw) != HashRefreshRaw(a.Raw) {
		t.Fatal("hash not deterministic")
	}
}

func TestSecretsEqual(t *testing.T) {
	if !SecretsEqual("hunter2", "hunter2") {
		t.Fatal("equal secrets rejected")
	}
	if SecretsEqual("hunter2", "hunter3") {
		t.Fatal("different secrets accepted")
	}
	if SecretsEqual("", "") || SecretsEqual("x", "") {
		t.Fatal("empty secret accepted")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	if err != nil {
		t.Fatal(err)
	}
	if !VerifyPassword(hash, "s3cret") {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatal("wrong password accepted")
	}
}

func TestStringSanitizers(t *testing.T) {
	if got := EscapeHTML(`<b>"hi" & 'bye'</b>`); got != "&lt;b&gt;&quot;hi&quot; &amp; &#39;bye&#39;&lt;/b&gt;" {
		t.Fatalf("EscapeHTML = %q", got)
	}
	if got := LiteralizeControls("a\nb\tc"); got != `a\nb\tc` {
		t.Fatalf("LiteralizeControls = %q", got)
	}
	if got := DigitsOnly("+212 659-727-363"); got != "212659727363" {
		t.Fatalf("DigitsOnly = %q", got)
	}
}
