package asic

import (
	"context"

	"github.com/netinspect/asicview/configs"
	"github.com/netinspect/asicview/pkg/store"
)

// Namespace is one independent hardware instance's state store.
// Single-ASIC systems have exactly one, with an empty name.
type Namespace struct {
	Name string
	Addr string
}

// Namespaces returns the configured namespace set.
func Namespaces() []Namespace {
	conf := configs.Conf
	if len(conf.Namespaces) == 0 {
		return []Namespace{{Name: "", Addr: conf.RedisAddr}}
	}

	nss := make([]Namespace, 0, len(conf.Namespaces))
	for _, ns := range conf.Namespaces {
		nss = append(nss, Namespace{Name: ns.Name, Addr: ns.Addr})
	}
	return nss
}

// ConnectASIC opens the namespace's ASIC database.
func (n Namespace) ConnectASIC(ctx context.Context) (store.Store, error) {
	return store.New(ctx, n.Addr, configs.Conf.ASICDB)
}

// ConnectChassisApp opens the namespace's chassis application database.
func (n Namespace) ConnectChassisApp(ctx context.Context) (store.Store, error) {
	return store.New(ctx, n.Addr, configs.Conf.ChassisAppDB)
}
