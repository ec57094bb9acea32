package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"timecal/internal/model"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLocale is used when a requested locale is unset or unrecognized.
const DefaultLocale = "en"

type ctxKey struct{}

// Bundle holds the loaded locale files. Constructed once at startup and
// passed to consumers; there is no package-level bundle.
type Bundle struct {
	bundle        *goi18n.Bundle
	matcher       language.Matcher
	locales       []string
	defaultLocale string
}

// New loads all embedded locale files. defaultLocale falls back to "en".
func New(defaultLocale string) (*Bundle, error) {
	if defaultLocale == "" {
		defaultLocale = DefaultLocale
	}

	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}

	var locales []string
	tags := []language.Tag{language.English}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		mf, err := bundle.ParseMessageFileBytes(data, e.Name())
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", e.Name(), err)
		}
		locales = append(locales, mf.Tag.String())
		if mf.Tag != language.English {
			tags = append(tags, mf.Tag)
		}
	}

	return &Bundle{
		bundle:        bundle,
		matcher:       language.NewMatcher(tags),
		locales:       locales,
		defaultLocale: defaultLocale,
	}, nil
}

// Locales lists the loaded locale codes.
func (b *Bundle) Locales() []string { return b.locales }

// DefaultLocale returns the configured fallback locale.
func (b *Bundle) DefaultLocale() string { return b.defaultLocale }

// Supported reports whether the locale code has a loaded locale file.
func (b *Bundle) Supported(locale string) bool {
	for _, l := range b.locales {
		if l == locale {
			return true
		}
	}
	return false
}

// Match resolves an Accept-Language style request to a supported locale code.
func (b *Bundle) Match(requested string) string {
	if requested == "" {
		return b.defaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(requested)
	if err != nil || len(tags) == 0 {
		return b.defaultLocale
	}
	tag, _, conf := b.matcher.Match(tags...)
	if conf == language.No {
		return b.defaultLocale
	}
	base, _ := tag.Base()
	if b.Supported(base.String()) {
		return base.String()
	}
	return b.defaultLocale
}

// WithLocale returns a context carrying the given locale code.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, ctxKey{}, locale)
}

// LocaleFromContext extracts the locale from the context, falling back to the
// bundle's default.
func (b *Bundle) LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
		return v
	}
	return b.defaultLocale
}

// T translates a message ID for the given locale. Unknown IDs come back as
// the ID itself so a missing translation never blanks the UI.
func (b *Bundle) T(locale, messageID string, templateData ...map[string]any) string {
	l := goi18n.NewLocalizer(b.bundle, locale, b.defaultLocale)

	cfg := &goi18n.LocalizeConfig{MessageID: messageID}
	if len(templateData) > 0 && templateData[0] != nil {
		cfg.TemplateData = templateData[0]
	}

	msg, err := l.Localize(cfg)
	if err != nil {
		return messageID
	}
	return msg
}

// Tctx translates using the locale carried by the context.
func (b *Bundle) Tctx(ctx context.Context, messageID string, templateData ...map[string]any) string {
	return b.T(b.LocaleFromContext(ctx), messageID, templateData...)
}

// RequestTypeLabel maps a request type to its translated display string.
func (b *Bundle) RequestTypeLabel(locale string, t model.RequestType) string {
	var id string
	switch t {
	case model.RequestTypeEditTimeSheet:
		id = "requestType.editTimeSheet"
	case model.RequestTypePaidLeave:
		id = "requestType.paidLeave"
	case model.RequestTypeUnpaidLeave:
		id = "requestType.unpaidLeave"
	case model.RequestTypeRemoteWork:
		id = "requestType.remoteWork"
	case model.RequestTypeOvertime:
		id = "requestType.overtime"
	default:
		return string(t)
	}
	return b.T(locale, id)
}

// RequestStatusLabel maps a request status to its translated display string.
func (b *Bundle) RequestStatusLabel(locale string, s model.RequestStatus) string {
	var id string
	switch s {
	case model.RequestStatusPending:
		id = "requestStatus.pending"
	case model.RequestStatusApproved:
		id = "requestStatus.approved"
	case model.RequestStatusRejected:
		id = "requestStatus.rejected"
	default:
		return string(s)
	}
	return b.T(locale, id)
}
