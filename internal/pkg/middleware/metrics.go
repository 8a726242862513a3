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

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsBuilder 统计每个路由的请求数量和响应时间
type MetricsBuilder struct {
	duration *prometheus.SummaryVec
	total    *prometheus.CounterVec
}

// NewMetricsBuilder 指标注册到 reg 上，传入 prometheus.DefaultRegisterer 就能通过 governor 暴露出去
func NewMetricsBuilder(reg prometheus.Registerer, namespace string) *MetricsBuilder {
	labels := []string{"method", "path", "status_code"}
	b := &MetricsBuilder{
		duration: prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		}, labels),
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, labels),
	}
	reg.MustRegister(b.duration, b.total)
	return b
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		// 没有命中路由的请求统一记为 unknown，避免 404 请求把标签打散
		path := ctx.FullPath()
		if path == "" {
			path = "unknown"
		}
		status := strconv.Itoa(ctx.Writer.Status())
		b.duration.WithLabelValues(ctx.Request.Method, path, status).Observe(time.Since(start).Seconds())
		b.total.WithLabelValues(ctx.Request.Method, path, status).Inc()
	}
}
