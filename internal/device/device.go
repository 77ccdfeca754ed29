// Package device derives device descriptors and fingerprints from request
// attributes and reconciles fingerprints against previously seen devices.
package device

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/JMURv/session-core/internal/dto"
	md "github.com/JMURv/session-core/internal/models"
	"github.com/JMURv/session-core/internal/repo"
	"github.com/google/uuid"
	"github.com/mssola/useragent"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type finder interface {
	FindDeviceByFingerprint(ctx context.Context, hash string, uid *uuid.UUID) (string, error)
}

type Identity struct {
	repo finder
}

func New(repo finder) *Identity {
	return &Identity{repo: repo}
}

func NewDeviceID() string {
	return uuid.NewString()
}

// Fingerprint hashes the ordered attribute tuple. IP is never part of it.
func Fingerprint(attrs dto.Fingerprint) string {
	screen := fmt.Sprintf("%dx%dx%d", attrs.ScreenWidth, attrs.ScreenHeight, attrs.ColorDepth)
	raw := strings.Join(
		[]string{
			attrs.UserAgent,
			attrs.Platform,
			attrs.Language,
			attrs.Timezone,
			screen,
		}, "|",
	)

	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Describe builds the descriptive part of a session from raw request attributes.
func Describe(req dto.DeviceRequest, name string) md.DeviceInfo {
	ua := useragent.New(req.UA)
	browser, version := ua.Browser()
	if version != "" {
		if major, _, ok := strings.Cut(version, "."); ok {
			version = major
		}
	}

	info := md.DeviceInfo{
		Type:     deviceType(ua, req.UA),
		Platform: ua.Platform(),
		Browser:  strings.TrimSpace(browser + " " + version),
		OS:       ua.OSInfo().Name,
		IP:       req.IP,
		UA:       req.UA,
		Location: strings.ToUpper(req.Country),
	}
	if req.Platform != "" {
		info.Platform = req.Platform
	}
	if !req.Fingerprint.IsZero() {
		info.Fingerprint = Fingerprint(*req.Fingerprint)
	}

	info.Name = name
	if info.Name == "" {
		info.Name = req.Name
	}
	if info.Name == "" {
		info.Name = defaultName(browser, info.OS)
	}
	return info
}

func defaultName(browser, os string) string {
	switch {
	case browser == "" && os == "":
		return "Unknown device"
	case os == "":
		return browser
	case browser == "":
		return os
	}
	return browser + " on " + os
}

func deviceType(ua *useragent.UserAgent, raw string) md.DeviceType {
	lower := strings.ToLower(raw)
	switch {
	case raw == "":
		return md.DeviceUnknown
	case ua.Bot():
		return md.DeviceBot
	case strings.Contains(lower, "ipad") || strings.Contains(lower, "tablet") ||
		(strings.Contains(lower, "android") && !strings.Contains(lower, "mobile")):
		return md.DeviceTablet
	case ua.Mobile():
		return md.DeviceMobile
	}
	return md.DeviceDesktop
}

// Reconcile returns the device id of the most recently active session carrying
// the given fingerprint, optionally scoped to one user. It never writes.
func (i *Identity) Reconcile(ctx context.Context, hash string, uid *uuid.UUID) (string, bool, error) {
	const op = "sessions.Reconcile.device"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if hash == "" {
		return "", false, nil
	}

	did, err := i.repo.FindDeviceByFingerprint(ctx, hash, uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", false, nil
		}
		zap.L().Error(
			"failed to reconcile device",
			zap.String("op", op),
			zap.String("fingerprint", hash),
			zap.Error(err),
		)
		return "", false, err
	}

	zap.L().Debug("device reconciled", zap.String("op", op), zap.String("device", did))
	return did, true, nil
}

// ParseScreen reads a "WxHxD" triple, tolerating missing parts.
func ParseScreen(s string) (w, h, d int) {
	parts := strings.SplitN(s, "x", 3)
	vals := [3]int{}
	for i, p := range parts {
		vals[i], _ = strconv.Atoi(strings.TrimSpace(p))
	}
	return vals[0], vals[1], vals[2]
}
