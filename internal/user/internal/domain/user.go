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

package domain

type User struct {
	ID       int64
	UserName string
	Name     string
	Email    string
	// Password 明文密码，只在注册和修改密码的时候传入，不会被保存
	Password string
	// PasswordHash bcrypt 之后的密码
	PasswordHash string
	Ctime        int64
	Utime        int64
}
