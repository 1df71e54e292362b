package services

import (
	"encoding/json"
	"sort"
	"strconv"

	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

// NormalizeFlightsResponse folds an aggregator response's best and other
// offer lists into a single deduplicated list sorted by ascending price.
// It is pure: the input is never mutated and no I/O happens here.
//
// Rules:
//   - an upstream error field short-circuits everything (UpstreamError),
//   - best offers come before other offers, and the first occurrence of a
//     duplicate wins, so a "best" instance beats an identical "other" one,
//   - the price sort is stable: equal-price offers keep first-seen order,
//   - a structurally fine response with zero offers is ErrNoFlightsFound,
//     which callers must tell apart from an upstream failure.
func NormalizeFlightsResponse(raw *response_models.FlightsResponse) (*response_models.FlightsResponse, error) {
	if raw == nil {
		return nil, utils.ErrInvalidInput
	}
	if raw.Error != "" {
		return nil, &utils.UpstreamError{Message: raw.Error}
	}

	merged := make([]response_models.FlightOffer, 0, len(raw.BestFlights)+len(raw.OtherFlights))
	merged = append(merged, raw.BestFlights...)
	merged = append(merged, raw.OtherFlights...)

	seen := make(map[string]struct{}, len(merged))
	unique := make([]response_models.FlightOffer, 0, len(merged))
	for _, offer := range merged {
		key := offerIdentity(offer)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, offer)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Price < unique[j].Price
	})

	if len(unique) == 0 {
		return nil, utils.ErrNoFlightsFound
	}

	out := *raw
	out.BestFlights = unique
	out.OtherFlights = nil
	return &out, nil
}

// offerIdentity keys an offer by its serialized segment sequence plus exact
// price. Two offers with structurally identical legs but different prices are
// distinct; so are identical prices on different legs.
func offerIdentity(offer response_models.FlightOffer) string {
	segments, err := json.Marshal(offer.Flights)
	if err != nil {
		// Segments are plain data; marshal cannot realistically fail. Fall
		// back to an identity that never collides.
		return strconv.Itoa(len(offer.Flights)) + "|" + strconv.FormatFloat(offer.Price, 'f', -1, 64)
	}
	return string(segments) + "|" + strconv.FormatFloat(offer.Price, 'f', -1, 64)
}
