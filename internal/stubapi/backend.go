package stubapi

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/exo-explorer/internal/config"
	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/internal/utils"
	"github.com/MKhiriev/exo-explorer/models"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultOtpTTL is how long an issued OTP stays valid.
	DefaultOtpTTL = 5 * time.Minute

	// DefaultTravelSpeedFraction is the share of light speed used for the
	// travel time shown in exoplanet details.
	DefaultTravelSpeedFraction = 0.1

	defaultLanguage = models.LanguageEnglish
)

type user struct {
	email        string
	passwordHash []byte
	firstName    string
	lastName     string
	darkMode     bool
	language     string
	isAdmin      bool

	// favorites keeps insertion order.
	favorites []int64

	otpHash   []byte
	otpExpiry time.Time

	backupCodes []backupCode
}

type backupCode struct {
	hash []byte
	used bool
}

// Backend is the in-memory exoplanet API. It is safe for concurrent use.
type Backend struct {
	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration
	adminEmails   []string

	otpTTL        time.Duration
	hashCost      int
	speedFraction float64

	validate *validator.Validate

	mu         sync.RWMutex
	users      map[string]*user
	exoplanets map[int64]models.Exoplanet
	nextID     int64
	issuedOtps map[string]string

	rnd    *rand.Rand
	now    func() time.Time
	newOtp func(email string, now time.Time) (string, error)

	logger *logger.Logger
}

// NewBackend creates a backend seeded with the reference catalog.
func NewBackend(cfg *config.StubAPIConfig, log *logger.Logger) *Backend {
	issuer := cfg.TokenIssuer
	if issuer == "" {
		issuer = config.DefaultTokenIssuer
	}

	b := &Backend{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   issuer,
		tokenDuration: cfg.TokenDuration,
		adminEmails:   normalizeEmails(cfg.AdminEmails),
		otpTTL:        DefaultOtpTTL,
		hashCost:      bcrypt.DefaultCost,
		speedFraction: DefaultTravelSpeedFraction,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		users:         make(map[string]*user),
		exoplanets:    make(map[int64]models.Exoplanet),
		issuedOtps:    make(map[string]string),
		rnd:           rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
		now:           time.Now,
		logger:        log,
	}
	b.newOtp = b.totpCode

	for _, e := range referenceCatalog() {
		b.insertLocked(e)
	}

	log.Info().
		Int("exoplanets", len(b.exoplanets)).
		Int("admins", len(b.adminEmails)).
		Msg("stub backend created")

	return b
}

// ParseToken validates a bearer token issued by this backend.
func (b *Backend) ParseToken(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, b.tokenSignKey, b.tokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return token, nil
}

func (b *Backend) issueToken(u *user) (models.Token, error) {
	return utils.GenerateJWTToken(b.tokenIssuer, u.email, u.isAdmin, b.tokenDuration, b.tokenSignKey)
}

func (b *Backend) isAdminEmail(email string) bool {
	return slices.Contains(b.adminEmails, email)
}

// insertLocked stores e under a fresh id. Callers hold mu.
func (b *Backend) insertLocked(e models.Exoplanet) models.Exoplanet {
	b.nextID++
	e.ID = b.nextID
	if e.OrbitalPeriodDays != nil && e.OrbitalPeriodYear == nil {
		e.OrbitalPeriodYear = ptr(*e.OrbitalPeriodDays / 365)
	}
	b.exoplanets[e.ID] = e
	return e
}

func (b *Backend) userLocked(email string) (*user, error) {
	u, ok := b.users[normalizeEmail(email)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, email)
	}
	return u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeEmails(emails []string) []string {
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		if e = normalizeEmail(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
