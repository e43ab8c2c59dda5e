// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eligius-health/eligius/ent/criteriabatch"
	"github.com/eligius-health/eligius/ent/criterion"
	"github.com/eligius-health/eligius/ent/predicate"
	"github.com/eligius-health/eligius/ent/protocol"
)

// CriteriaBatchQuery is the builder for querying CriteriaBatch entities.
type CriteriaBatchQuery struct {
	config
	ctx          *QueryContext
	order        []criteriabatch.OrderOption
	inters       []Interceptor
	predicates   []predicate.CriteriaBatch
	withProtocol *ProtocolQuery
	withCriteria *CriterionQuery
	modifiers    []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CriteriaBatchQuery builder.
func (_q *CriteriaBatchQuery) Where(ps ...predicate.CriteriaBatch) *CriteriaBatchQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CriteriaBatchQuery) Limit(limit int) *CriteriaBatchQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CriteriaBatchQuery) Offset(offset int) *CriteriaBatchQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CriteriaBatchQuery) Unique(unique bool) *CriteriaBatchQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CriteriaBatchQuery) Order(o ...criteriabatch.OrderOption) *CriteriaBatchQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryProtocol chains the current query on the "protocol" edge.
func (_q *CriteriaBatchQuery) QueryProtocol() *ProtocolQuery {
	query := (&ProtocolClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(criteriabatch.Table, criteriabatch.FieldID, selector),
			sqlgraph.To(protocol.Table, protocol.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, criteriabatch.ProtocolTable, criteriabatch.ProtocolColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCriteria chains the current query on the "criteria" edge.
func (_q *CriteriaBatchQuery) QueryCriteria() *CriterionQuery {
	query := (&CriterionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(criteriabatch.Table, criteriabatch.FieldID, selector),
			sqlgraph.To(criterion.Table, criterion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, criteriabatch.CriteriaTable, criteriabatch.CriteriaColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CriteriaBatch entity from the query.
// Returns a *NotFoundError when no CriteriaBatch was found.
func (_q *CriteriaBatchQuery) First(ctx context.Context) (*CriteriaBatch, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{criteriabatch.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CriteriaBatchQuery) FirstX(ctx context.Context) *CriteriaBatch {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CriteriaBatch ID from the query.
// Returns a *NotFoundError when no CriteriaBatch ID was found.
func (_q *CriteriaBatchQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{criteriabatch.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CriteriaBatchQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CriteriaBatch entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CriteriaBatch entity is found.
// Returns a *NotFoundError when no CriteriaBatch entities are found.
func (_q *CriteriaBatchQuery) Only(ctx context.Context) (*CriteriaBatch, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{criteriabatch.Label}
	default:
		return nil, &NotSingularError{criteriabatch.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CriteriaBatchQuery) OnlyX(ctx context.Context) *CriteriaBatch {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CriteriaBatch ID in the query.
// Returns a *NotSingularError when more than one CriteriaBatch ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CriteriaBatchQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{criteriabatch.Label}
	default:
		err = &NotSingularError{criteriabatch.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CriteriaBatchQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CriteriaBatches.
func (_q *CriteriaBatchQuery) All(ctx context.Context) ([]*CriteriaBatch, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CriteriaBatch, *CriteriaBatchQuery]()
	return withInterceptors[[]*CriteriaBatch](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CriteriaBatchQuery) AllX(ctx context.Context) []*CriteriaBatch {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CriteriaBatch IDs.
func (_q *CriteriaBatchQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(criteriabatch.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CriteriaBatchQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CriteriaBatchQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CriteriaBatchQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CriteriaBatchQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CriteriaBatchQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *CriteriaBatchQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CriteriaBatchQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CriteriaBatchQuery) Clone() *CriteriaBatchQuery {
	if _q == nil {
		return nil
	}
	return &CriteriaBatchQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]criteriabatch.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.CriteriaBatch{}, _q.predicates...),
		withProtocol: _q.withProtocol.Clone(),
		withCriteria: _q.withCriteria.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithProtocol tells the query-builder to eager-load the nodes that are connected to
// the "protocol" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CriteriaBatchQuery) WithProtocol(opts ...func(*ProtocolQuery)) *CriteriaBatchQuery {
	query := (&ProtocolClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withProtocol = query
	return _q
}

// WithCriteria tells the query-builder to eager-load the nodes that are connected to
// the "criteria" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CriteriaBatchQuery) WithCriteria(opts ...func(*CriterionQuery)) *CriteriaBatchQuery {
	query := (&CriterionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCriteria = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ProtocolID string `json:"protocol_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CriteriaBatch.Query().
//		GroupBy(criteriabatch.FieldProtocolID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CriteriaBatchQuery) GroupBy(field string, fields ...string) *CriteriaBatchGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CriteriaBatchGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = criteriabatch.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ProtocolID string `json:"protocol_id,omitempty"`
//	}
//
//	client.CriteriaBatch.Query().
//		Select(criteriabatch.FieldProtocolID).
//		Scan(ctx, &v)
func (_q *CriteriaBatchQuery) Select(fields ...string) *CriteriaBatchSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CriteriaBatchSelect{CriteriaBatchQuery: _q}
	sbuild.label = criteriabatch.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CriteriaBatchSelect configured with the given aggregations.
func (_q *CriteriaBatchQuery) Aggregate(fns ...AggregateFunc) *CriteriaBatchSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CriteriaBatchQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !criteriabatch.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *CriteriaBatchQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CriteriaBatch, error) {
	var (
		nodes       = []*CriteriaBatch{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withProtocol != nil,
			_q.withCriteria != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CriteriaBatch).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CriteriaBatch{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withProtocol; query != nil {
		if err := _q.loadProtocol(ctx, query, nodes, nil,
			func(n *CriteriaBatch, e *Protocol) { n.Edges.Protocol = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCriteria; query != nil {
		if err := _q.loadCriteria(ctx, query, nodes,
			func(n *CriteriaBatch) { n.Edges.Criteria = []*Criterion{} },
			func(n *CriteriaBatch, e *Criterion) { n.Edges.Criteria = append(n.Edges.Criteria, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CriteriaBatchQuery) loadProtocol(ctx context.Context, query *ProtocolQuery, nodes []*CriteriaBatch, init func(*CriteriaBatch), assign func(*CriteriaBatch, *Protocol)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*CriteriaBatch)
	for i := range nodes {
		fk := nodes[i].ProtocolID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(protocol.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "protocol_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *CriteriaBatchQuery) loadCriteria(ctx context.Context, query *CriterionQuery, nodes []*CriteriaBatch, init func(*CriteriaBatch), assign func(*CriteriaBatch, *Criterion)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*CriteriaBatch)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(criterion.FieldBatchID)
	}
	query.Where(predicate.Criterion(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(criteriabatch.CriteriaColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BatchID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "batch_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *CriteriaBatchQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CriteriaBatchQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(criteriabatch.Table, criteriabatch.Columns, sqlgraph.NewFieldSpec(criteriabatch.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, criteriabatch.FieldID)
		for i := range fields {
			if fields[i] != criteriabatch.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withProtocol != nil {
			_spec.Node.AddColumnOnce(criteriabatch.FieldProtocolID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *CriteriaBatchQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(criteriabatch.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = criteriabatch.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *CriteriaBatchQuery) ForUpdate(opts ...sql.LockOption) *CriteriaBatchQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *CriteriaBatchQuery) ForShare(opts ...sql.LockOption) *CriteriaBatchQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// CriteriaBatchGroupBy is the group-by builder for CriteriaBatch entities.
type CriteriaBatchGroupBy struct {
	selector
	build *CriteriaBatchQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CriteriaBatchGroupBy) Aggregate(fns ...AggregateFunc) *CriteriaBatchGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CriteriaBatchGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CriteriaBatchQuery, *CriteriaBatchGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CriteriaBatchGroupBy) sqlScan(ctx context.Context, root *CriteriaBatchQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CriteriaBatchSelect is the builder for selecting fields of CriteriaBatch entities.
type CriteriaBatchSelect struct {
	*CriteriaBatchQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CriteriaBatchSelect) Aggregate(fns ...AggregateFunc) *CriteriaBatchSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CriteriaBatchSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CriteriaBatchQuery, *CriteriaBatchSelect](ctx, _s.CriteriaBatchQuery, _s, _s.inters, v)
}

func (_s *CriteriaBatchSelect) sqlScan(ctx context.Context, root *CriteriaBatchQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
