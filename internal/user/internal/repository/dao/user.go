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

package dao

import (
	"github.com/ecodeclub/weblog/internal/pkg/crud"
	"github.com/ego-component/egorm"
)

type UserDAO = crud.DAO[User]

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return crud.NewGORMDAO[User](db)
}

type User struct {
	ID       int64  `gorm:"primaryKey,autoIncrement"`
	UserName string `gorm:"type:varchar(128);not null;uniqueIndex"`
	Name     string `gorm:"type:varchar(256)"`
	Email    string `gorm:"type:varchar(256)"`
	// bcrypt 哈希，从来不存明文
	Password string `gorm:"type:varchar(128);not null"`
	// 创建时间
	Ctime int64 `gorm:"autoCreateTime:milli"`
	// 更新时间
	Utime int64 `gorm:"autoUpdateTime:milli"`
}

func (u User) PrimaryKey() int64 {
	return u.ID
}

func (User) TableName() string {
	return "app_users"
}
