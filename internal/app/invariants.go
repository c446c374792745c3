package app

import (
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// InvariantRoute is a registered invariant with its module and route name
type InvariantRoute struct {
	ModuleName string
	Route      string
	Invar      sdk.Invariant
}

// FullRoute returns the route as "module/route"
func (r InvariantRoute) FullRoute() string {
	return r.ModuleName + "/" + r.Route
}

// InvariantRegistry collects module invariants. It satisfies
// sdk.InvariantRegistry so modules register the same way they would with crisis.
type InvariantRegistry struct {
	routes []InvariantRoute
}

var _ sdk.InvariantRegistry = (*InvariantRegistry)(nil)

// RegisterRoute registers an invariant
func (ir *InvariantRegistry) RegisterRoute(moduleName, route string, invar sdk.Invariant) {
	ir.routes = append(ir.routes, InvariantRoute{ModuleName: moduleName, Route: route, Invar: invar})
}

// Routes returns the registered invariants in registration order
func (ir *InvariantRegistry) Routes() []InvariantRoute {
	return append([]InvariantRoute(nil), ir.routes...)
}

// InvariantResult is the outcome of one invariant
type InvariantResult struct {
	Route  string `json:"route"`
	Broken bool   `json:"broken"`
	Msg    string `json:"msg"`
}

// Check runs every invariant against ctx. The error lists the broken routes.
func (ir *InvariantRegistry) Check(ctx sdk.Context) ([]InvariantResult, error) {
	results := make([]InvariantResult, 0, len(ir.routes))
	var broken []string
	for _, r := range ir.routes {
		msg, stop := r.Invar(ctx)
		results = append(results, InvariantResult{Route: r.FullRoute(), Broken: stop, Msg: msg})
		if stop {
			broken = append(broken, r.FullRoute())
		}
	}
	if len(broken) > 0 {
		return results, fmt.Errorf("broken invariants: %s", strings.Join(broken, ", "))
	}
	return results, nil
}
