package show

import (
	"fmt"
	"io"
	"net"
	"sort"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/facette/natsort"
	"github.com/samber/lo"

	"github.com/netinspect/asicview/internal/fdb"
	"github.com/netinspect/asicview/internal/voq"
	"github.com/netinspect/asicview/pkg/utils"
)

var (
	fdbHeaders      = []string{"Vlan", "MacAddress", "Port", "Type"}
	portHeaders     = []string{"System Port Name", "Port Id", "Switch Id", "Core", "Core Port", "Speed"}
	neighborHeaders = []string{"System Port Interface", "Neighbor", "MAC", "Encap Index"}
	lagHeaders      = []string{"System Lag Name", "Lag Id", "Switch Id", "Member System Ports"}
)

// Render writes headers, a dashed separator, one row per entry with a
// running 1-based index, and the trailing count line. Zero rows still
// print headers and a zero count.
func Render(w io.Writer, headers []string, rows [][]string) {
	headers = append([]string{"No."}, headers...)
	indexed := make([][]string, len(rows))
	for i, row := range rows {
		indexed[i] = append([]string{strconv.Itoa(i + 1)}, row...)
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range indexed {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) {
		var sb strings.Builder
		for i, cell := range cells {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(fmt.Sprintf("%-*s", widths[i], cell))
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}

	writeRow(headers)
	writeRow(lo.Map(widths, func(n int, _ int) string { return strings.Repeat("-", n) }))
	for _, row := range indexed {
		writeRow(row)
	}
	fmt.Fprintf(w, "Total number of entries %d\n", len(rows))
}

// filterSet turns a comma-separated filter value into a membership set.
func filterSet(v string) mapset.Set[string] {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); len(item) > 0 {
			set.Add(item)
		}
	}
	return set
}

// FDBOptions .
type FDBOptions struct {
	Port string
	Vlan string
}

// FDB filters, sorts and renders the learned MAC table. A filter that
// matches no entry prints "<v> is not in list" instead of a table.
func FDB(w io.Writer, entries []fdb.Entry, opts FDBOptions) {
	if len(opts.Vlan) > 0 {
		set := filterSet(opts.Vlan)
		entries = lo.Filter(entries, func(e fdb.Entry, _ int) bool {
			return set.Contains(strconv.Itoa(e.Vlan))
		})
		if len(entries) == 0 {
			fmt.Fprintf(w, "%s is not in list\n", opts.Vlan)
			return
		}
	}

	if len(opts.Port) > 0 {
		set := filterSet(opts.Port)
		entries = lo.Filter(entries, func(e fdb.Entry, _ int) bool {
			return set.Contains(e.Port)
		})
		if len(entries) == 0 {
			fmt.Fprintf(w, "%s is not in list\n", opts.Port)
			return
		}
	}

	// Numeric ascending on VLAN; stable, so equal VLANs keep scan order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Vlan < entries[j].Vlan
	})

	Render(w, fdbHeaders, lo.Map(entries, func(e fdb.Entry, _ int) []string {
		return []string{strconv.Itoa(e.Vlan), e.Mac, e.Port, string(e.Type)}
	}))
}

// VOQOptions .
type VOQOptions struct {
	Namespace string // substring on namespace name
	Linecard  string // substring on the key's leading host segment
	Iface     string // substring on port/neighbor interface key
	IP        string // neighbor IP substring, validated as an address
	Lag       string // substring on lag key
}

func (o VOQOptions) keepKey(namespace, key string) bool {
	if len(o.Namespace) > 0 && !strings.Contains(namespace, o.Namespace) {
		return false
	}
	if len(o.Linecard) > 0 && !strings.Contains(utils.FirstKeySegment(key), o.Linecard) {
		return false
	}
	return true
}

// SystemPorts .
func SystemPorts(w io.Writer, ports []voq.SystemPort, opts VOQOptions) {
	ports = lo.Filter(ports, func(p voq.SystemPort, _ int) bool {
		if !opts.keepKey(p.Namespace, p.Name) {
			return false
		}
		return len(opts.Iface) == 0 || strings.Contains(p.Name, opts.Iface)
	})

	sort.SliceStable(ports, func(i, j int) bool {
		return natsort.Compare(ports[i].Name, ports[j].Name)
	})

	Render(w, portHeaders, lo.Map(ports, func(p voq.SystemPort, _ int) []string {
		return []string{p.Name, p.PortID, p.SwitchID, p.Core, p.CorePort, p.Speed}
	}))
}

// SystemNeighbors renders the neighbor table. A malformed -a address
// prints a message and no table: policy for invalid user filters.
func SystemNeighbors(w io.Writer, neighbors []voq.SystemNeighbor, opts VOQOptions) {
	if len(opts.IP) > 0 && net.ParseIP(opts.IP) == nil {
		fmt.Fprintf(w, "Invalid ip address %s\n", opts.IP)
		return
	}

	neighbors = lo.Filter(neighbors, func(n voq.SystemNeighbor, _ int) bool {
		if !opts.keepKey(n.Namespace, n.InterfaceKey) {
			return false
		}
		if len(opts.Iface) > 0 && !strings.Contains(n.InterfaceKey, opts.Iface) {
			return false
		}
		return len(opts.IP) == 0 || strings.Contains(n.NeighborIP, opts.IP)
	})

	sort.SliceStable(neighbors, func(i, j int) bool {
		return natsort.Compare(neighbors[i].InterfaceKey, neighbors[j].InterfaceKey)
	})

	Render(w, neighborHeaders, lo.Map(neighbors, func(n voq.SystemNeighbor, _ int) []string {
		return []string{n.InterfaceKey, n.NeighborIP, n.Mac, n.EncapIndex}
	}))
}

// SystemLags .
func SystemLags(w io.Writer, lags []voq.SystemLag, opts VOQOptions) {
	lags = lo.Filter(lags, func(l voq.SystemLag, _ int) bool {
		if !opts.keepKey(l.Namespace, l.LagKey) {
			return false
		}
		return len(opts.Lag) == 0 || strings.Contains(l.LagKey, opts.Lag)
	})

	sort.SliceStable(lags, func(i, j int) bool {
		return natsort.Compare(lags[i].LagKey, lags[j].LagKey)
	})

	Render(w, lagHeaders, lo.Map(lags, func(l voq.SystemLag, _ int) []string {
		return []string{l.LagKey, l.LagID, l.SwitchID, l.Members}
	}))
}
