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

package ioc

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/weblog/internal/pkg/database"
	"github.com/ego-component/egorm"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gotomicro/ego/core/econf"
)

func InitDB() *egorm.Component {
	WaitForDBSetup(econf.GetString("mysql.dsn"))
	db := egorm.Load("mysql").Build()
	err := db.Use(database.NewTracingPlugin())
	if err != nil {
		panic(err)
	}
	return db
}

// dbWaitConfig 对应 mysql.wait，没有配置的字段使用默认值
type dbWaitConfig struct {
	InitialInterval time.Duration `yaml:"initialInterval"`
	MaxInterval     time.Duration `yaml:"maxInterval"`
	MaxRetries      int32         `yaml:"maxRetries"`
	PingTimeout     time.Duration `yaml:"pingTimeout"`
}

// WaitForDBSetup 用 docker compose 启动的时候 MySQL 往往比应用慢，
// 按照指数退避一直 ping 到成功为止，重试次数用完就 panic
func WaitForDBSetup(dsn string) {
	cfg := dbWaitConfig{
		InitialInterval: time.Second,
		MaxInterval:     10 * time.Second,
		MaxRetries:      10,
		PingTimeout:     5 * time.Second,
	}
	if err := econf.UnmarshalKey("mysql.wait", &cfg); err != nil {
		panic(fmt.Errorf("读取 mysql.wait 配置失败 %w", err))
	}
	strategy, err := retry.NewExponentialBackoffRetryStrategy(cfg.InitialInterval, cfg.MaxInterval, cfg.MaxRetries)
	if err != nil {
		panic(err)
	}
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		panic(err)
	}
	defer sqlDB.Close()
	if err = waitFor(context.Background(), sqlDB, strategy, cfg.PingTimeout); err != nil {
		panic(fmt.Errorf("等待 MySQL 启动失败 %w", err))
	}
}

type pinger interface {
	PingContext(ctx context.Context) error
}

// waitFor 每一次 ping 都有单独的超时时间
func waitFor(ctx context.Context, p pinger, strategy retry.Strategy, pingTimeout time.Duration) error {
	return retry.Retry(ctx, strategy, func() error {
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		return p.PingContext(pctx)
	})
}
