package auth

import (
	"strings"

	"github.com/iliyamo/progear-storefront/internal/model"
)

// Tier is the access class of a navigable route.
type Tier int

const (
	TierPublic Tier = iota
	TierUser
	TierAdmin
	// TierUnlisted routes are in none of the allow-lists and are allowed for
	// everyone. A protected page added without a tier entry becomes public.
	TierUnlisted
)

func (t Tier) String() string {
	switch t {
	case TierPublic:
		return "public"
	case TierUser:
		return "user"
	case TierAdmin:
		return "admin"
	}
	return "unlisted"
}

var routeTiers = map[string]Tier{
	"/":            TierPublic,
	"/products":    TierPublic,
	"/categories":  TierPublic,
	"/sale":        TierPublic,
	"/brands":      TierPublic,
	"/cart":        TierUser,
	"/checkout":    TierUser,
	"/orders":      TierUser,
	"/wishlist":    TierUser,
	"/settings":    TierUser,
	"/admin":       TierAdmin,
	"/winter-sale": TierAdmin,
}

// ClassifyRoute returns the tier of route. Query strings and a trailing slash
// are ignored.
func ClassifyRoute(route string) Tier {
	if tier, ok := routeTiers[normalizeRoute(route)]; ok {
		return tier
	}
	return TierUnlisted
}

// CanAccessRoute applies the three-tier allow-list to s. Unlisted routes are
// allowed.
func CanAccessRoute(route string, s *model.Session) bool {
	switch ClassifyRoute(route) {
	case TierUser:
		return s.IsLoggedIn()
	case TierAdmin:
		return s.IsAdmin()
	}
	return true
}

func normalizeRoute(route string) string {
	if i := strings.IndexByte(route, '?'); i >= 0 {
		route = route[:i]
	}
	if route == "" {
		return "/"
	}
	if len(route) > 1 {
		route = strings.TrimRight(route, "/")
		if route == "" {
			return "/"
		}
	}
	return route
}
