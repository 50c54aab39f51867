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

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidInput = errors.New("非法输入")

const (
	MsgRequiredFields = "Please fill in all required fields"
	MsgInvalidEmail   = "Please enter a valid email address"
	MsgInvalidSalary  = "Salary must be a non-negative whole number"
)

// JobID 由远端分析服务分配，是分析结果的唯一缓存键
type JobID uint64

func (id JobID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// JobSubmission 是校验通过之后，真正发给远端的招聘信息
type JobSubmission struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description" validate:"required"`
	CompanyName  string `json:"companyName" validate:"required"`
	ContactEmail string `json:"contactEmail" validate:"required,contact_email"`
	// nil 表示没有填写薪资
	Salary *int64 `json:"salary,omitempty" validate:"omitempty,gte=0"`
}

// RawFormInput 是前端表单原样提交上来的内容，薪资还是字符串
type RawFormInput struct {
	Title        string
	Description  string
	CompanyName  string
	ContactEmail string
	Salary       string
}

// ValidationError 只描述第一个不满足的约束
type ValidationError struct {
	Field string
	Rule  string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: 字段 %s 不满足 %s", e.Msg, e.Field, e.Rule)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	err := v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return emailRegexp.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
	return v
}

// Submission 校验表单，并且转换成 JobSubmission。
// 字符串字段会先去掉首尾空白，薪资为空字符串表示没有填写。
func (f RawFormInput) Submission() (JobSubmission, error) {
	sub := JobSubmission{
		Title:        strings.TrimSpace(f.Title),
		Description:  strings.TrimSpace(f.Description),
		CompanyName:  strings.TrimSpace(f.CompanyName),
		ContactEmail: strings.TrimSpace(f.ContactEmail),
	}
	var salaryErr error
	if raw := strings.TrimSpace(f.Salary); raw != "" {
		salary, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			salaryErr = &ValidationError{Field: "salary", Rule: "integer", Msg: MsgInvalidSalary}
		} else {
			sub.Salary = &salary
		}
	}
	if err := sub.Validate(); err != nil {
		return JobSubmission{}, err
	}
	if salaryErr != nil {
		return JobSubmission{}, salaryErr
	}
	return sub, nil
}

func (s JobSubmission) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	fe := ves[0]
	return &ValidationError{
		Field: fe.Field(),
		Rule:  fe.Tag(),
		Msg:   validationMsg(fe.Field(), fe.Tag()),
	}
}

func validationMsg(field, rule string) string {
	switch {
	case rule == "required":
		return MsgRequiredFields
	case field == "contactEmail":
		return MsgInvalidEmail
	case field == "salary":
		return MsgInvalidSalary
	default:
		return fmt.Sprintf("invalid %s", field)
	}
}
