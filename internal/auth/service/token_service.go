package service

import (
	"slices"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/studybuddy/certtracker/internal/auth/domain"
	apperrors "github.com/studybuddy/certtracker/internal/errors"
)

// jwtTokenService implements TokenService with HMAC-SHA256 signed JWTs.
type jwtTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a TokenService signing with the given symmetric secret.
// An empty secret is a configuration error: the constructor fails and the
// process must not start.
func NewTokenService(secret string, ttl time.Duration) (TokenService, error) {
	if secret == "" {
		return nil, apperrors.New("token signing secret is not configured")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &jwtTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue builds a signed token carrying the subject id (stringified), the
// username, and iat/exp bounds. Extra claims are merged into the payload after
// checking for reserved-name collisions.
func (s *jwtTokenService) Issue(userID int64, username string, extraClaims map[string]any) (string, error) {
	now := s.now()

	claims := jwt.MapClaims{
		domain.ClaimSubject:  strconv.FormatInt(userID, 10),
		domain.ClaimUsername: username,
		domain.ClaimIssuedAt: jwt.NewNumericDate(now),
		domain.ClaimExpires:  jwt.NewNumericDate(now.Add(s.ttl)),
	}

	for name, value := range extraClaims {
		if slices.Contains(domain.ReservedClaims, name) {
			return "", apperrors.Wrap(domain.ErrReservedClaim, name)
		}
		claims[name] = value
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate verifies the signature against the issuing secret, then checks
// expiry and extracts the subject identity. Only HMAC signatures are accepted.
func (s *jwtTokenService) Validate(tokenString string) (*domain.Identity, error) {
	claims := jwt.MapClaims{}

	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, apperrors.Wrapf(domain.ErrTokenInvalid, "unexpected signing method %q", t.Method.Alg())
			}
			return s.secret, nil
		},
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		// Expiry is only trusted once the signature checked out: the parser
		// verifies the signature before validating claims.
		if apperrors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	username, _ := claims[domain.ClaimUsername].(string)

	return &domain.Identity{
		UserID:   userID,
		Username: username,
	}, nil
}
