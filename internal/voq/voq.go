package voq

import (
	"context"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/facette/natsort"
	"github.com/mitchellh/mapstructure"

	"github.com/netinspect/asicview/internal/asic"
	"github.com/netinspect/asicview/pkg/log"
	"github.com/netinspect/asicview/pkg/store"
	"github.com/netinspect/asicview/pkg/utils"
)

const (
	systemPortTable      = "SYSTEM_PORT_TABLE"
	systemNeighTable     = "SYSTEM_NEIGH"
	systemLagTable       = "SYSTEM_LAG_TABLE"
	systemLagMemberTable = "SYSTEM_LAG_MEMBER_TABLE"

	// NotAvailable fills any attribute the store does not carry.
	NotAvailable = "N/A"
)

// SystemPort .
type SystemPort struct {
	Namespace string
	Name      string
	PortID    string `mapstructure:"system_port_id"`
	SwitchID  string `mapstructure:"switch_id"`
	Core      string `mapstructure:"core_index"`
	CorePort  string `mapstructure:"core_port_index"`
	Speed     string `mapstructure:"speed"`
}

// SystemNeighbor .
type SystemNeighbor struct {
	Namespace    string
	InterfaceKey string
	NeighborIP   string
	Mac          string `mapstructure:"neigh"`
	EncapIndex   string `mapstructure:"encap_index"`
}

// SystemLag .
type SystemLag struct {
	Namespace string
	LagKey    string
	LagID     string `mapstructure:"lag_id"`
	SwitchID  string `mapstructure:"switch_id"`
	Members   string
}

// FormatSpeed renders a raw kbps figure as a device-style unit string.
// Non-numeric values pass through unchanged.
func FormatSpeed(raw string) string {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return raw
	}
	switch {
	case n >= 1_000_000 && n%1_000_000 == 0:
		return strconv.FormatUint(n/1_000_000, 10) + "G"
	case n >= 1_000 && n%1_000 == 0:
		return strconv.FormatUint(n/1_000, 10) + "M"
	default:
		return raw + "K"
	}
}

// ScanSystemPorts .
func ScanSystemPorts(ctx context.Context, st store.Store) ([]SystemPort, error) {
	keys, err := st.ListKeys(ctx, systemPortTable+"|*")
	if err != nil {
		return nil, errors.Wrap(err, "list system ports")
	}

	ports := make([]SystemPort, 0, len(keys))
	for _, key := range keys {
		attrs, err := st.GetAttributes(ctx, key)
		if err != nil {
			return nil, errors.Wrapf(err, "fetch %s", key)
		}

		port := SystemPort{Name: utils.TableKeySuffix(key)}
		if err := mapstructure.Decode(attrs, &port); err != nil {
			return nil, errors.Wrapf(err, "decode %s", key)
		}
		fillNotAvailable(&port.PortID, &port.SwitchID, &port.Core, &port.CorePort, &port.Speed)
		if port.Speed != NotAvailable {
			port.Speed = FormatSpeed(port.Speed)
		}
		ports = append(ports, port)
	}
	return ports, nil
}

// ScanSystemNeighbors .
func ScanSystemNeighbors(ctx context.Context, st store.Store) ([]SystemNeighbor, error) {
	keys, err := st.ListKeys(ctx, systemNeighTable+"|*")
	if err != nil {
		return nil, errors.Wrap(err, "list system neighbors")
	}

	neighbors := make([]SystemNeighbor, 0, len(keys))
	for _, key := range keys {
		attrs, err := st.GetAttributes(ctx, key)
		if err != nil {
			return nil, errors.Wrapf(err, "fetch %s", key)
		}

		// "<host>|<asic>|<iface>:<ip>"; the first colon ends the
		// interface part, everything after is the IP (v4 or v6).
		suffix := utils.TableKeySuffix(key)
		n := SystemNeighbor{InterfaceKey: suffix}
		if i := strings.IndexByte(suffix, ':'); i >= 0 {
			n.InterfaceKey, n.NeighborIP = suffix[:i], suffix[i+1:]
		}
		if err := mapstructure.Decode(attrs, &n); err != nil {
			return nil, errors.Wrapf(err, "decode %s", key)
		}
		fillNotAvailable(&n.Mac, &n.EncapIndex)
		neighbors = append(neighbors, n)
	}
	return neighbors, nil
}

// ScanSystemLags resolves lag attributes plus membership via a secondary
// prefix scan keyed by the lag's own key. Empty membership is valid.
func ScanSystemLags(ctx context.Context, st store.Store) ([]SystemLag, error) {
	keys, err := st.ListKeys(ctx, systemLagTable+"|*")
	if err != nil {
		return nil, errors.Wrap(err, "list system lags")
	}

	lags := make([]SystemLag, 0, len(keys))
	for _, key := range keys {
		attrs, err := st.GetAttributes(ctx, key)
		if err != nil {
			return nil, errors.Wrapf(err, "fetch %s", key)
		}

		lag := SystemLag{LagKey: utils.TableKeySuffix(key)}
		if err := mapstructure.Decode(attrs, &lag); err != nil {
			return nil, errors.Wrapf(err, "decode %s", key)
		}
		fillNotAvailable(&lag.LagID, &lag.SwitchID)

		members, err := lagMembers(ctx, st, lag.LagKey)
		if err != nil {
			return nil, err
		}
		lag.Members = strings.Join(members, ", ")
		lags = append(lags, lag)
	}
	return lags, nil
}

func lagMembers(ctx context.Context, st store.Store, lagKey string) ([]string, error) {
	keys, err := st.ListKeys(ctx, systemLagMemberTable+"|"+lagKey+"|*")
	if err != nil {
		return nil, errors.Wrapf(err, "list members of %s", lagKey)
	}

	members := make([]string, 0, len(keys))
	for _, key := range keys {
		members = append(members, utils.LastKeySegment(key))
	}
	natsort.Sort(members)
	return members, nil
}

func fillNotAvailable(fields ...*string) {
	for _, f := range fields {
		if len(*f) == 0 {
			*f = NotAvailable
		}
	}
}

// ScanAllSystemPorts aggregates across namespaces. A failing namespace
// is logged and skipped; inspection of the rest still has value.
func ScanAllSystemPorts(ctx context.Context, nss []asic.Namespace) []SystemPort {
	var all []SystemPort
	forEachNamespace(ctx, nss, func(ns asic.Namespace, st store.Store) error {
		ports, err := ScanSystemPorts(ctx, st)
		if err != nil {
			return err
		}
		for i := range ports {
			ports[i].Namespace = ns.Name
		}
		all = append(all, ports...)
		return nil
	})
	return all
}

// ScanAllSystemNeighbors .
func ScanAllSystemNeighbors(ctx context.Context, nss []asic.Namespace) []SystemNeighbor {
	var all []SystemNeighbor
	forEachNamespace(ctx, nss, func(ns asic.Namespace, st store.Store) error {
		neighbors, err := ScanSystemNeighbors(ctx, st)
		if err != nil {
			return err
		}
		for i := range neighbors {
			neighbors[i].Namespace = ns.Name
		}
		all = append(all, neighbors...)
		return nil
	})
	return all
}

// ScanAllSystemLags .
func ScanAllSystemLags(ctx context.Context, nss []asic.Namespace) []SystemLag {
	var all []SystemLag
	forEachNamespace(ctx, nss, func(ns asic.Namespace, st store.Store) error {
		lags, err := ScanSystemLags(ctx, st)
		if err != nil {
			return err
		}
		for i := range lags {
			lags[i].Namespace = ns.Name
		}
		all = append(all, lags...)
		return nil
	})
	return all
}

func forEachNamespace(ctx context.Context, nss []asic.Namespace, fn func(asic.Namespace, store.Store) error) {
	for _, ns := range nss {
		st, err := ns.ConnectChassisApp(ctx)
		if err != nil {
			log.Warnf("skip namespace %q: %v", ns.Name, err)
			continue
		}
		if err := fn(ns, st); err != nil {
			log.Warnf("skip namespace %q: %v", ns.Name, err)
		}
		_ = st.Close()
	}
}
