package fdb

import (
	"context"
	"strconv"

	"github.com/patrickmn/go-cache"

	"github.com/netinspect/asicview/pkg/log"
	"github.com/netinspect/asicview/pkg/store"
	"github.com/netinspect/asicview/pkg/terrors"
	"github.com/netinspect/asicview/pkg/utils"
)

const (
	vlanKeyPrefix = "ASIC_STATE:SAI_OBJECT_TYPE_VLAN:"
	attrVlanID    = "SAI_VLAN_ATTR_VLAN_ID"
)

// VlanOutcome tags how a bridge-domain id was resolved, so callers can
// choose to keep, warn or drop.
type VlanOutcome int

const (
	// VlanResolved is a VLAN id read from the bridge-domain object.
	VlanResolved VlanOutcome = iota
	// VlanDegraded is the lossy fallback: the raw bridge-domain id is
	// used as the VLAN number after a query failure.
	VlanDegraded
	// VlanNone marks the default untagged bridge domain; the record
	// must be excluded, never shown as VLAN 0.
	VlanNone
)

// VlanResolution .
type VlanResolution struct {
	Outcome VlanOutcome
	Vlan    int
}

// VlanResolver resolves bridge-domain ids to VLAN ids, memoized for the
// lifetime of one scan. Failures are cached too, so each distinct bvid
// costs at most one indirect query.
type VlanResolver struct {
	st    store.Store
	cache *cache.Cache
}

// NewVlanResolver .
func NewVlanResolver(st store.Store) *VlanResolver {
	return &VlanResolver{
		st:    st,
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Resolve .
func (r *VlanResolver) Resolve(ctx context.Context, bvid string) VlanResolution {
	if v, ok := r.cache.Get(bvid); ok {
		return v.(VlanResolution)
	}

	res := r.lookup(ctx, bvid)
	r.cache.Set(bvid, res, cache.NoExpiration)
	return res
}

func (r *VlanResolver) lookup(ctx context.Context, bvid string) VlanResolution {
	raw, err := r.st.GetAttribute(ctx, vlanKeyPrefix+bvid, attrVlanID)
	switch {
	case terrors.IsKeyNotExistsErr(err):
		// Default 802.1Q bridge: no VLAN object exists for it.
		return VlanResolution{Outcome: VlanNone}
	case err != nil:
		return r.fallback(bvid, err)
	}

	vlan, err := strconv.Atoi(raw)
	if err != nil {
		return r.fallback(bvid, err)
	}
	return VlanResolution{Outcome: VlanResolved, Vlan: vlan}
}

// fallback treats the raw bridge-domain id as if it were the VLAN id.
// This is lossy and likely semantically wrong, but mirrors what the
// device reports under partial failure; keep it loud in the log.
func (r *VlanResolver) fallback(bvid string, cause error) VlanResolution {
	log.Warnf("resolve bridge domain %s failed (%v); using raw id as vlan", bvid, cause)

	v, err := utils.OidValue(bvid)
	if err != nil {
		log.Warnf("bridge domain %s is not an oid; dropping record", bvid)
		return VlanResolution{Outcome: VlanNone}
	}
	return VlanResolution{Outcome: VlanDegraded, Vlan: int(v)}
}
