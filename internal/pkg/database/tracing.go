// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package database

import (
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "github.com/ecodeclub/weblog/internal/pkg/database"
	spanKey             = "weblog:tracing:span"
)

// TracingPlugin 实现了 gorm.Plugin，每一次数据库操作都会创建一个 client span
type TracingPlugin struct {
	tracer trace.Tracer
}

// NewTracingPlugin 使用全局的 TracerProvider，所以要在初始化 tracer 之后调用
func NewTracingPlugin() *TracingPlugin {
	return NewTracingPluginWithProvider(otel.GetTracerProvider())
}

func NewTracingPluginWithProvider(tp trace.TracerProvider) *TracingPlugin {
	return &TracingPlugin{tracer: tp.Tracer(instrumentationName)}
}

func (p *TracingPlugin) Name() string {
	return "weblog:tracing"
}

type registerFunc func(name string, fn func(*gorm.DB)) error

func (p *TracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	hooks := []struct {
		op     string
		before registerFunc
		after  registerFunc
	}{
		{op: "SELECT", before: cb.Query().Before("gorm:query").Register, after: cb.Query().After("gorm:query").Register},
		{op: "INSERT", before: cb.Create().Before("gorm:create").Register, after: cb.Create().After("gorm:create").Register},
		{op: "UPDATE", before: cb.Update().Before("gorm:update").Register, after: cb.Update().After("gorm:update").Register},
		{op: "DELETE", before: cb.Delete().Before("gorm:delete").Register, after: cb.Delete().After("gorm:delete").Register},
		{op: "ROW", before: cb.Row().Before("gorm:row").Register, after: cb.Row().After("gorm:row").Register},
		{op: "RAW", before: cb.Raw().Before("gorm:raw").Register, after: cb.Raw().After("gorm:raw").Register},
	}
	for _, h := range hooks {
		if err := h.before("tracing:before_"+h.op, p.before(h.op)); err != nil {
			return err
		}
		if err := h.after("tracing:after_"+h.op, p.after(h.op)); err != nil {
			return err
		}
	}
	return nil
}

func (p *TracingPlugin) before(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		ctx := db.Statement.Context
		name := op
		if db.Statement.Table != "" {
			name = db.Statement.Table + " " + op
		}
		ctx, span := p.tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
	}
}

func (p *TracingPlugin) after(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		val, ok := db.InstanceGet(spanKey)
		if !ok {
			return
		}
		span, ok := val.(trace.Span)
		if !ok {
			return
		}
		defer span.End()
		attrs := []attribute.KeyValue{
			attribute.String("db.system", "mysql"),
			attribute.String("db.operation", op),
			attribute.String("db.table", db.Statement.Table),
			attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
		}
		if sql := db.Statement.SQL.String(); sql != "" {
			attrs = append(attrs, attribute.String("db.statement", sql))
		}
		span.SetAttributes(attrs...)
		// 查询不到数据是正常的业务结果
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			span.RecordError(db.Error)
			span.SetStatus(codes.Error, db.Error.Error())
			return
		}
		span.SetStatus(codes.Ok, "")
	}
}
