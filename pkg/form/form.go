// Package form 表单校验与清洗
//
// 每个字段声明一组有序规则，规则依次执行：
//   - 清洗规则（Trim）修改字段值，从不失败
//   - 校验规则失败时为该字段贡献一条错误消息，并停止该字段后续规则
//   - OptionalDate遇到空值时视为"未填写"，直接结束该字段的规则链
//
// 所有字段都会被校验（字段之间不短路），一次提交即可返回全部问题。
package form

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/xiebiao/library/pkg/datefmt"
)

var validate = validator.New()

// FieldError 单个字段的校验错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Field 字段声明
type Field struct {
	Name  string
	Rules []Rule
}

// NewField 创建字段声明
func NewField(name string, rules ...Rule) Field {
	return Field{Name: name, Rules: rules}
}

// Schema 表单结构（字段顺序即错误顺序）
type Schema struct {
	fields []Field
}

// NewSchema 创建表单结构
func NewSchema(fields ...Field) *Schema {
	return &Schema{fields: fields}
}

// Result 校验结果
// Values始终保存清洗后的提交值，校验失败时用于回填表单
type Result struct {
	Values map[string]string
	Dates  map[string]*time.Time
	Errors []FieldError
}

// Valid 是否全部通过
func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

// Value 获取清洗后的字段值
func (r *Result) Value(name string) string {
	return r.Values[name]
}

// Date 获取解析后的日期（未填写时为nil）
func (r *Result) Date(name string) *time.Time {
	return r.Dates[name]
}

// ErrorFor 获取字段的错误消息
func (r *Result) ErrorFor(name string) string {
	for _, fe := range r.Errors {
		if fe.Field == name {
			return fe.Message
		}
	}
	return ""
}

// AddError 追加一条字段错误（供跨字段或依赖存储的校验使用）
func (r *Result) AddError(field, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

// Validate 执行校验
func (s *Schema) Validate(input map[string]string) *Result {
	res := &Result{
		Values: make(map[string]string, len(s.fields)),
		Dates:  make(map[string]*time.Time),
	}

	for _, f := range s.fields {
		st := &state{value: input[f.Name]}
		for _, rule := range f.Rules {
			if msg := rule(st); msg != "" {
				res.AddError(f.Name, msg)
				break
			}
			if st.done {
				break
			}
		}
		res.Values[f.Name] = st.value
		if st.date != nil {
			res.Dates[f.Name] = st.date
		}
	}

	return res
}

// =========================================
// 规则
// =========================================

// state 单个字段在规则链中的状态
type state struct {
	value string
	date  *time.Time
	done  bool // 规则链提前结束（非错误）
}

// Rule 校验规则，返回非空字符串表示失败
type Rule func(st *state) string

// Trim 去除首尾空白
func Trim() Rule {
	return func(st *state) string {
		st.value = strings.TrimSpace(st.value)
		return ""
	}
}

// Default 空值时使用默认值
func Default(v string) Rule {
	return func(st *state) string {
		if st.value == "" {
			st.value = v
		}
		return ""
	}
}

// Required 必填
func Required(msg string) Rule {
	return tagRule("required", msg)
}

// Alphanumeric 只允许ASCII字母和数字
func Alphanumeric(msg string) Rule {
	return tagRule("alphanum", msg)
}

// Numeric 只允许数字
func Numeric(msg string) Rule {
	return tagRule("numeric", msg)
}

// MaxLen 最大长度（按字符计）
func MaxLen(n int, msg string) Rule {
	return tagRule("max="+strconv.Itoa(n), msg)
}

// OneOf 值必须在候选列表中
func OneOf(msg string, values ...string) Rule {
	return tagRule("oneof="+strings.Join(values, " "), msg)
}

// OptionalDate 可选日期
// 空值视为未填写（不报错，结束规则链）；非空值必须是YYYY-MM-DD格式
func OptionalDate(msg string) Rule {
	return func(st *state) string {
		if st.value == "" {
			st.done = true
			return ""
		}
		t, err := datefmt.ParseInput(st.value)
		if err != nil {
			return msg
		}
		st.date = &t
		return ""
	}
}

// tagRule 基于validator tag的规则
func tagRule(tag, msg string) Rule {
	return func(st *state) string {
		if err := validate.Var(st.value, tag); err != nil {
			return msg
		}
		return ""
	}
}
