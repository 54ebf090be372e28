package auth

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/config"

	jwt "github.com/golang-jwt/jwt/v5"
)

const (
	defaultLeeway  = 30 * time.Second
	jwksRefreshTTL = 5 * time.Minute
)

var (
	// ErrInvalidToken reports a missing, malformed, expired, or otherwise
	// unverifiable bearer token. Handlers translate it to a 401.
	ErrInvalidToken = errors.New("invalid bearer token")

	errUnknownKey = errors.New("unknown signing key")
)

// Verifier resolves a bearer token to the identity provider's UID.
type Verifier interface {
	VerifyUID(token string) (string, error)
}

// JWKSVerifier validates RS256 tokens against the identity provider's JWKS
// endpoint. Keys are cached by kid and refreshed when a token arrives signed
// by a key we have not seen, so provider key rotation needs no restart.
type JWKSVerifier struct {
	jwksURL    string
	issuer     string
	audience   string
	httpClient *http.Client

	mu          sync.RWMutex
	keys        map[string]*rsa.PublicKey
	nextRefresh time.Time
}

func NewVerifier(config config.Config) (*JWKSVerifier, error) {
	jwksURL := strings.TrimSpace(config.AuthJwksURL)
	if jwksURL == "" {
		return nil, errors.New("auth JWKS URL is required")
	}

	return &JWKSVerifier{
		jwksURL:    jwksURL,
		issuer:     config.AuthIssuer,
		audience:   config.AuthAudience,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}, nil
}

func (v *JWKSVerifier) VerifyUID(token string) (string, error) {
	claims, err := v.parse(token)
	if errors.Is(err, errUnknownKey) {
		if refreshErr := v.refreshKeys(); refreshErr != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidToken, refreshErr)
		}
		claims, err = v.parse(token)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	uid := strings.TrimSpace(claims.Subject)
	if uid == "" {
		return "", fmt.Errorf("%w: token subject missing", ErrInvalidToken)
	}
	return uid, nil
}

func (v *JWKSVerifier) parse(token string) (jwt.RegisteredClaims, error) {
	claims := jwt.RegisteredClaims{}

	if len(v.snapshotKeys()) == 0 {
		return claims, errUnknownKey
	}

	parsed, err := jwt.ParseWithClaims(token, &claims, v.keyForToken,
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithLeeway(defaultLeeway),
	)
	if err != nil {
		return claims, err
	}
	if !parsed.Valid {
		return claims, errors.New("token failed validation")
	}
	return claims, nil
}

func (v *JWKSVerifier) keyForToken(token *jwt.Token) (any, error) {
	kid, _ := token.Header["kid"].(string)
	if kid == "" {
		return nil, errUnknownKey
	}

	key, ok := v.snapshotKeys()[kid]
	if !ok {
		return nil, errUnknownKey
	}
	return key, nil
}

func (v *JWKSVerifier) snapshotKeys() map[string]*rsa.PublicKey {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.keys
}

func (v *JWKSVerifier) refreshKeys() error {
	v.mu.Lock()
	if time.Now().Before(v.nextRefresh) && len(v.keys) > 0 {
		v.mu.Unlock()
		return nil
	}
	v.mu.Unlock()

	resp, err := v.httpClient.Get(v.jwksURL)
	if err != nil {
		return fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch JWKS: status %d", resp.StatusCode)
	}

	var payload struct {
		Keys []struct {
			Kty string `json:"kty"`
			Kid string `json:"kid"`
			N   string `json:"n"`
			E   string `json:"e"`
		} `json:"keys"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("failed to decode JWKS: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(payload.Keys))
	for _, entry := range payload.Keys {
		if !strings.EqualFold(strings.TrimSpace(entry.Kty), "RSA") || entry.Kid == "" {
			continue
		}
		key, err := decodeRSAKey(entry.N, entry.E)
		if err != nil {
			continue
		}
		keys[entry.Kid] = key
	}
	if len(keys) == 0 {
		return errors.New("JWKS contains no usable RSA keys")
	}

	v.mu.Lock()
	v.keys = keys
	v.nextRefresh = time.Now().Add(jwksRefreshTTL)
	v.mu.Unlock()
	return nil
}

func decodeRSAKey(nRaw, eRaw string) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(nRaw))
	if err != nil {
		return nil, err
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(eRaw))
	if err != nil {
		return nil, err
	}

	n := new(big.Int).SetBytes(nBytes)
	e := new(big.Int).SetBytes(eBytes)
	if n.Sign() <= 0 || !e.IsInt64() || e.Int64() <= 0 {
		return nil, errors.New("invalid RSA key material")
	}

	return &rsa.PublicKey{N: n, E: int(e.Int64())}, nil
}
