package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/JMURv/session-core/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type Kind string

const (
	Access  Kind = "access"
	Refresh Kind = "refresh"
)

type Port interface {
	Issue(ctx context.Context, uid uuid.UUID, sid, did string, kind Kind) (string, time.Time, error)
	GenPair(ctx context.Context, uid uuid.UUID, sid, did string) (Pair, error)
	ParseClaims(ctx context.Context, tokenStr string) (Claims, error)
	ParseKind(ctx context.Context, tokenStr string, kind Kind) (Claims, error)
}

type Core struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

type Claims struct {
	UID  uuid.UUID `json:"uid"`
	SID  string    `json:"sid"`
	DID  string    `json:"did"`
	Kind Kind      `json:"typ"`
	jwt.RegisteredClaims
}

type Pair struct {
	Access           string
	AccessExpiresAt  time.Time
	Refresh          string
	RefreshExpiresAt time.Time
}

func New(conf config.JWTConfig) *Core {
	c := &Core{
		secret:     []byte(conf.Secret),
		issuer:     conf.Issuer,
		accessTTL:  conf.AccessTTL,
		refreshTTL: conf.RefreshTTL,
		now:        time.Now,
	}
	if c.accessTTL <= 0 {
		c.accessTTL = config.AccessTokenDuration
	}
	if c.refreshTTL <= 0 {
		c.refreshTTL = config.RefreshTokenDuration
	}
	return c
}

// WithClock replaces the time source used for issuing and validating tokens.
func (c *Core) WithClock(now func() time.Time) *Core {
	c.now = now
	return c
}

func (c *Core) ttl(kind Kind) time.Duration {
	if kind == Refresh {
		return c.refreshTTL
	}
	return c.accessTTL
}

func (c *Core) Issue(ctx context.Context, uid uuid.UUID, sid, did string, kind Kind) (string, time.Time, error) {
	const op = "auth.Issue.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	now := c.now()
	exp := now.Add(c.ttl(kind))
	signed, err := jwt.NewWithClaims(
		jwt.SigningMethodHS256, &Claims{
			UID:  uid,
			SID:  sid,
			DID:  did,
			Kind: kind,
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        uuid.NewString(),
				Subject:   uid.String(),
				ExpiresAt: jwt.NewNumericDate(exp),
				IssuedAt:  jwt.NewNumericDate(now),
				Issuer:    c.issuer,
			},
		},
	).SignedString(c.secret)
	if err != nil {
		zap.L().Error(
			ErrWhileCreatingToken.Error(),
			zap.String("op", op),
			zap.Error(err),
		)

		return "", time.Time{}, ErrWhileCreatingToken
	}

	return signed, exp, nil
}

func (c *Core) GenPair(ctx context.Context, uid uuid.UUID, sid, did string) (Pair, error) {
	const op = "auth.GenPair.jwt"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := Pair{}
	var err error
	res.Access, res.AccessExpiresAt, err = c.Issue(ctx, uid, sid, did, Access)
	if err != nil {
		zap.L().Error(
			"Failed to generate token pair",
			zap.String("op", op),
			zap.String("uid", uid.String()),
			zap.Error(err),
		)

		return Pair{}, err
	}

	res.Refresh, res.RefreshExpiresAt, err = c.Issue(ctx, uid, sid, did, Refresh)
	if err != nil {
		zap.L().Error(
			"Failed to generate token pair",
			zap.String("op", op),
			zap.String("uid", uid.String()),
			zap.Error(err),
		)

		return Pair{}, err
	}

	return res, nil
}

// ParseClaims verifies signature, issuer and expiry. Expired tokens yield
// ErrTokenExpired, everything else that fails verification ErrTokenInvalid.
func (c *Core) ParseClaims(ctx context.Context, tokenStr string) (Claims, error) {
	const op = "auth.ParseClaims.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims := Claims{}
	token, err := jwt.ParseWithClaims(
		tokenStr, &claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, ErrUnexpectedSignMethod
			}

			return c.secret, nil
		},
		jwt.WithIssuer(c.issuer),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			zap.L().Debug("Token is expired", zap.String("op", op))
			return claims, ErrTokenExpired
		}

		zap.L().Debug(
			"Failed to parse claims",
			zap.String("op", op),
			zap.Error(err),
		)
		return claims, ErrTokenInvalid
	}

	if !token.Valid || claims.UID == uuid.Nil || claims.SID == "" {
		zap.L().Debug("Token is invalid", zap.String("op", op))
		return claims, ErrTokenInvalid
	}

	return claims, nil
}

// ParseKind is ParseClaims that also rejects tokens minted for another purpose.
func (c *Core) ParseKind(ctx context.Context, tokenStr string, kind Kind) (Claims, error) {
	claims, err := c.ParseClaims(ctx, tokenStr)
	if err != nil {
		return claims, err
	}

	if claims.Kind != kind {
		zap.L().Debug(
			"Unexpected token kind",
			zap.String("want", string(kind)),
			zap.String("got", string(claims.Kind)),
		)
		return claims, ErrTokenInvalid
	}

	return claims, nil
}
