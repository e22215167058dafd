package services

import (
	"fmt"
	"strings"

	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/kernel"
	"github.com/Gmpatem/campus-cart-v2/internal/pkg/errs"
	"github.com/Gmpatem/campus-cart-v2/internal/pkg/guard"
)

// FeeZone is the fee tier assigned to a merchant by name, independent of
// order content.
type FeeZone int

const (
	// Unclassified means the store name matched no configured zone.
	// Unclassified stores are charged no fee rather than failing the order.
	Unclassified FeeZone = iota

	// Near covers merchants on or immediately around campus.
	Near

	// Far covers merchants in the surrounding towns.
	Far

	// VeryFar covers merchants requiring a trip to the city malls.
	VeryFar
)

func getFeeZoneStrings() map[FeeZone]string {
	return map[FeeZone]string{
		Unclassified: "Unclassified",
		Near:         "Near",
		Far:          "Far",
		VeryFar:      "VeryFar",
	}
}

// String returns the zone's name, "Unclassified" for unknown values.
// This method implements the fmt.Stringer interface.
func (z FeeZone) String() string {
	if str, ok := getFeeZoneStrings()[z]; ok {
		return str
	}
	return "Unclassified"
}

// ErrFeeScheduleIsNotConstructed is returned when attempting to use an
// improperly initialized FeeSchedule.
var ErrFeeScheduleIsNotConstructed = fmt.Errorf(
	"FeeSchedule must be created via NewFeeSchedule or DefaultFeeSchedule")

// ZoneRule binds a fee zone to its flat fee and the merchant-name substrings
// that place a store in that zone. Rules are configuration data, not logic:
// editing the tables requires no code changes.
type ZoneRule struct {
	Zone      FeeZone
	Fee       kernel.Money
	Merchants []string
}

// FeeSchedule classifies merchant names into fee zones by ordered substring
// membership. Rules are checked in the order given, so farther (more
// specific) zones must come first; the first rule with a matching merchant
// substring wins.
type FeeSchedule struct {
	rules []zoneRule

	guard guard.ConstructorGuard
}

// zoneRule is a ZoneRule with merchant substrings pre-normalized for
// case-insensitive matching.
type zoneRule struct {
	zone      FeeZone
	fee       kernel.Money
	merchants []string
}

// NewFeeSchedule creates a FeeSchedule from ordered zone rules.
// Every rule needs a valid fee and at least one merchant substring.
func NewFeeSchedule(rules []ZoneRule) (FeeSchedule, error) {
	if len(rules) == 0 {
		return FeeSchedule{}, errs.NewValueIsRequiredError("rules")
	}

	normalized := make([]zoneRule, 0, len(rules))
	for _, rule := range rules {
		if err := rule.Fee.Validate(); err != nil {
			return FeeSchedule{}, err
		}
		if len(rule.Merchants) == 0 {
			return FeeSchedule{}, errs.NewValueIsRequiredError("merchants")
		}

		merchants := make([]string, 0, len(rule.Merchants))
		for _, merchant := range rule.Merchants {
			merchant = strings.ToLower(strings.TrimSpace(merchant))
			if merchant == "" {
				return FeeSchedule{}, errs.NewValueIsRequiredError("merchant")
			}
			merchants = append(merchants, merchant)
		}

		normalized = append(normalized, zoneRule{
			zone:      rule.Zone,
			fee:       rule.Fee,
			merchants: merchants,
		})
	}

	return FeeSchedule{
		rules: normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// DefaultFeeSchedule returns the schedule in production use: 199 for the
// city malls, 99 for the surrounding towns, 69 for campus and its immediate
// vicinity. Deployments with different coverage pass their own table to
// NewFeeSchedule.
func DefaultFeeSchedule() FeeSchedule {
	veryFar := mustMoneyFromInt(199)
	far := mustMoneyFromInt(99)
	near := mustMoneyFromInt(69)

	schedule, err := NewFeeSchedule([]ZoneRule{
		{Zone: VeryFar, Fee: veryFar, Merchants: []string{
			"sm city", "sta. rosa", "santa rosa", "nuvali", "solenad", "paseo", "calamba",
		}},
		{Zone: Far, Fee: far, Merchants: []string{
			"tagaytay", "dasmarinas", "carmona", "gma", "pala-pala",
		}},
		{Zone: Near, Fee: near, Merchants: []string{
			"aup", "cafeteria", "silang", "puting kahoy", "biga",
		}},
	})
	if err != nil {
		// The table above is static; failing to build it is a programming error.
		panic(err)
	}
	return schedule
}

// Validate checks if the FeeSchedule was properly constructed.
func (s FeeSchedule) Validate() error {
	return s.guard.Validate(ErrFeeScheduleIsNotConstructed)
}

// Classify maps a store name to its fee zone and flat fee.
// Matching is case-insensitive substring containment of any configured
// merchant name inside the store name, checked rule by rule in order. An
// empty or unmatched store name degrades to Unclassified with a zero fee
// rather than failing.
func (s FeeSchedule) Classify(storeName string) (FeeZone, kernel.Money) {
	normalized := strings.ToLower(strings.TrimSpace(storeName))
	if normalized == "" {
		return Unclassified, kernel.ZeroMoney()
	}

	for _, rule := range s.rules {
		for _, merchant := range rule.merchants {
			if strings.Contains(normalized, merchant) {
				return rule.zone, rule.fee
			}
		}
	}

	return Unclassified, kernel.ZeroMoney()
}

func mustMoneyFromInt(units int64) kernel.Money {
	m, err := kernel.NewMoneyFromInt(units)
	if err != nil {
		panic(err)
	}
	return m
}
