package export

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultInterests is the interest tag list assigned to every model profile.
var DefaultInterests = mustJSON([]string{"nude", "clothed", "costume"})

// whiteFlag is the neutral flag emoji seeded into every profile.
const whiteFlag = "\U0001F3F3️"

// Issue is a soft validation problem found while synthesizing the directory.
// Rows with issues are defaulted or skipped, never fatal.
type Issue struct {
	Sheet   string `json:"sheet"`
	Slug    string `json:"slug,omitempty"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// UserSynthOptions configures the user/host record synthesizer.
type UserSynthOptions struct {
	// AdminEmail and AdminPassword seed the system administrator account.
	AdminEmail    string
	AdminPassword string
	// TesterPrefix is the name-prefix heuristic for internal test rows that
	// were mailed from the production sheet but must never become users.
	TesterPrefix string
}

var (
	skipSheetRe   = regexp.MustCompile(`(?i)(venues|calendar)`)
	anyDigitRe    = regexp.MustCompile(`[0-9]+`)
	allDigitsRe   = regexp.MustCompile(`^[0-9]+$`)
	leadingSeven  = regexp.MustCompile(`^7`)
	maleSexRe     = regexp.MustCompile(`(?i)^m`)
	femaleSexRe   = regexp.MustCompile(`(?i)^f`)
)

// BuildUsers merges the form-export sheets into a directory of unified user
// records keyed by slug. Venue and calendar sheets are handled by their own
// synthesizers and skipped here.
func BuildUsers(raw RawExport, opts UserSynthOptions, log zerolog.Logger) (*Directory, []Issue) {
	if opts.TesterPrefix == "" {
		opts.TesterPrefix = "bruce"
	}

	dir := NewDirectory()
	var issues []Issue

	dir.Put(systemAdmin(opts))

	// Sheets are visited in sorted key order so reruns over identical input
	// produce an identically ordered directory.
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sheet := raw[name]
		if sheet == nil || len(sheet.Records) == 0 {
			continue
		}
		if skipSheetRe.MatchString(sheet.Title) {
			continue
		}

		log.Info().Str("sheet", sheet.Title).Int("records", len(sheet.Records)).Msg("Processing sheet")
		sheetType := strings.ToLower(sheet.Title)

		for _, record := range sheet.Records {
			if skip, reason := skipRow(record, opts.TesterPrefix); skip {
				log.Debug().Str("sheet", sheetType).Str("reason", reason).Msg("Skipping row")
				continue
			}

			fullname := record.Get("name", "fullname")
			if fullname == "" {
				log.Warn().Str("sheet", sheetType).Msg("Row has no fullname, dropping")
				issues = append(issues, Issue{Sheet: sheetType, Field: "fullname", Message: "missing, row dropped"})
				continue
			}

			slug := Slugify(fullname)

			email := record.Get("emailaddress", "email")
			if email == "" {
				email = slug + "@placeholder.com"
				log.Warn().Str("sheet", sheetType).Str("slug", slug).Msg("Row has no email, synthesizing placeholder")
				issues = append(issues, Issue{Sheet: sheetType, Slug: slug, Field: "email", Message: "missing, placeholder synthesized"})
			}

			entry := synthesizeUser(record, sheet.Title, sheetType, slug, fullname, email)

			if !dir.Put(entry) {
				log.Warn().Str("sheet", sheetType).Str("slug", slug).Msg("Not replacing existing directory entry")
			}
		}
	}

	return dir, issues
}

// skipRow applies the legacy row-skip policy: unsubscribed rows, rows whose
// hosted count holds no digits, and internal tester rows.
func skipRow(record Row, testerPrefix string) (bool, string) {
	if record.Get("unsubscribeOn") != "" {
		return true, "unsubscribed"
	}

	// A present hosted value short-circuits the remaining checks; the row
	// stays only when the value carries a digit.
	if hosted := record.Get("hosted"); hosted != "" {
		if !anyDigitRe.MatchString(hosted) {
			return true, "un-hosted"
		}
		return false, ""
	}

	if record.Get("tester") == "checked" {
		return true, "tester"
	}
	if record.Get("sentOn") != "" &&
		strings.HasPrefix(strings.ToLower(record.Get("fullname")), strings.ToLower(testerPrefix)) {
		return true, "tester"
	}

	return false, ""
}

func synthesizeUser(record Row, title, sheetType, slug, fullname, email string) *Entry {
	// Model rows stay globally active unless hosted is present and not
	// purely numeric; a present-but-empty hosted deactivates.
	hostedNumeric := allDigitsRe.MatchString(record.Get("hosted"))
	isGlobalActive := !record.Has("hosted") || hostedNumeric

	interestTags := "[]"
	if title == "models" {
		interestTags = DefaultInterests
	}

	phone := strings.TrimSpace(record.Get("phone", "phone_number"))
	phone = leadingSeven.ReplaceAllString(phone, "07")

	tz := record.Get("location", "timezone")
	if tz == "" {
		tz = "Europe/London"
	}

	return &Entry{
		Kind:  KindForSheet(title),
		Sheet: sheetType,
		Slug:  slug,

		Fullname:       fullname,
		Email:          strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:   HashPassword(email, ""),
		UserStatus:     "unconfirmed",
		IsGlobalActive: isGlobalActive,
		IsAdmin:        false,

		PhoneNumber:    phone,
		Handle:         slug,
		Description:    "",
		AvatarURL:      record.Get("portrait"),
		InterestTags:   interestTags,
		FlagEmoji:      whiteFlag,
		AffiliateURLs:  quotedList(record.Get("website")),
		PaymentMethods: paymentMethodsJSON(record.Get("account_holder"), record.Get("sortcode"), record.Get("account")),

		DisplayName:   fullname,
		WebsiteURLs:   quotedList(record.Get("website")),
		PortraitURLs:  quotedList(record.Get("portrait")),
		SocialHandles: modelSocialHandles(record),
		Sex:           inferSex(record.Get("sex")),

		DateCreated: record.Get("dateAdded", "createdOn"),
		TZ:          tz,
	}
}

func systemAdmin(opts UserSynthOptions) *Entry {
	fullname := "System Administrator"
	return &Entry{
		Kind:  KindSystem,
		Sheet: "system",
		Slug:  Slugify(fullname),

		Fullname:       fullname,
		Handle:         "system-admin",
		Email:          strings.ToLower(strings.TrimSpace(opts.AdminEmail)),
		PasswordHash:   HashPassword(opts.AdminEmail, opts.AdminPassword),
		UserStatus:     "active",
		IsGlobalActive: true,
		IsAdmin:        true,

		InterestTags:   DefaultInterests,
		FlagEmoji:      whiteFlag,
		AffiliateURLs:  "[]",
		AvatarURL:      "1024/system-admin.jpg",
		PaymentMethods: paymentMethodsJSON(fullname, "", ""),

		DisplayName: fullname,
		TZ:          "Europe/London",
	}
}

// inferSex maps free text onto the sex enum via a leading-letter match.
func inferSex(text string) string {
	switch {
	case maleSexRe.MatchString(text):
		return "male"
	case femaleSexRe.MatchString(text):
		return "female"
	default:
		return "unspecified"
	}
}

// quotedList reproduces the legacy single-quoted list literal for URL
// columns; seeded rows already hold this shape.
func quotedList(value string) string {
	if value == "" {
		return "[]"
	}
	return "['" + value + "']"
}

// modelSocialHandles serializes a list of single-key handle objects for
// whichever networks the record names.
func modelSocialHandles(record Row) string {
	var handles []map[string]string
	for _, network := range []string{"instagram", "twitter", "facebook"} {
		if v := record.Get(network); v != "" {
			handles = append(handles, map[string]string{network: v})
		}
	}
	if handles == nil {
		handles = []map[string]string{}
	}
	return mustJSON(handles)
}

type bankDetails struct {
	Name          *string `json:"name"`
	SortCode      *string `json:"sort_code"`
	AccountNumber *string `json:"account_number"`
}

type paymentMethods struct {
	Monzo   *string     `json:"monzo"`
	Revolut *string     `json:"revolut"`
	Paypal  *string     `json:"paypal"`
	IBAN    *string     `json:"iban"`
	Bank    bankDetails `json:"bank"`
}

// paymentMethodsJSON serializes the nested payment column. Absent values are
// null, never empty strings.
func paymentMethodsJSON(holder, sortCode, account string) string {
	return mustJSON(paymentMethods{
		Bank: bankDetails{
			Name:          nullable(holder),
			SortCode:      nullable(sortCode),
			AccountNumber: nullable(account),
		},
	})
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
