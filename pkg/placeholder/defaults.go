// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package placeholder

import (
	"math"
	"strconv"
	"strings"

	"github.com/glyphmc/glyph/pkg/host"
)

// Built-in placeholder keys. SetDefaults restores exactly this set.
const (
	KeyPlayer      = "{player}"
	KeyDisplayName = "{display_name}"
	KeyUUID        = "{uuid}"
	KeyWorld       = "{world}"
	KeyGameMode    = "{gamemode}"
	KeyX           = "{x}"
	KeyY           = "{y}"
	KeyZ           = "{z}"
	KeyYaw         = "{yaw}"
	KeyPitch       = "{pitch}"
)

// seedLocked installs the built-in rules. Caller holds the write lock
// (or owns the registry exclusively during construction).
func (r *Registry) seedLocked() {
	seed := func(key string, resolve Resolver) {
		r.index[strings.ToLower(key)] = len(r.rules)
		r.rules = append(r.rules, Rule{Key: key, Resolve: resolve, builtin: true})
	}

	seed(KeyPlayer, func(rec host.Recipient) string { return rec.Name() })
	seed(KeyDisplayName, func(rec host.Recipient) string { return rec.DisplayName() })
	seed(KeyUUID, func(rec host.Recipient) string { return rec.ID().String() })
	seed(KeyWorld, func(rec host.Recipient) string { return rec.World() })
	seed(KeyGameMode, func(rec host.Recipient) string { return rec.GameMode() })
	seed(KeyX, func(rec host.Recipient) string {
		x, _, _ := rec.Position()
		return roundCoord(x)
	})
	seed(KeyY, func(rec host.Recipient) string {
		_, y, _ := rec.Position()
		return roundCoord(y)
	})
	seed(KeyZ, func(rec host.Recipient) string {
		_, _, z := rec.Position()
		return roundCoord(z)
	})
	seed(KeyYaw, func(rec host.Recipient) string {
		yaw, _ := rec.Heading()
		return roundCoord(yaw)
	})
	seed(KeyPitch, func(rec host.Recipient) string {
		_, pitch := rec.Heading()
		return roundCoord(pitch)
	})
}

// roundCoord renders a coordinate rounded to the nearest integer, the
// way players expect to read positions in chat.
func roundCoord(v float64) string {
	return strconv.Itoa(int(math.Round(v)))
}
