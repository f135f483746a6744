// Package view 服务端渲染的HTML模板
//
// 模板随二进制一起嵌入，通过gin.Engine.SetHTMLTemplate注册。
// 每个页面是一个define块，由处理器按名称渲染（如"author_detail"）。
package view

import (
	"embed"
	"html/template"
	"time"

	"github.com/xiebiao/library/internal/domain/bookinstance"
	"github.com/xiebiao/library/pkg/datefmt"
)

//go:embed templates/*.html
var files embed.FS

// Funcs 模板函数
// 日期缺失在页面上显示为空，不能让模板执行因格式化错误中断
func Funcs() template.FuncMap {
	return template.FuncMap{
		"fmtdate": func(t *time.Time) string {
			return datefmt.FormatOr(t, "")
		},
		"inputdate":   datefmt.FormatInput,
		"statusClass": StatusClass,
	}
}

// StatusClass 副本状态对应的样式
func StatusClass(s bookinstance.Status) string {
	switch s {
	case bookinstance.StatusAvailable:
		return "text-success"
	case bookinstance.StatusMaintenance:
		return "text-danger"
	default:
		return "text-warning"
	}
}

// New 解析全部嵌入模板
func New() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(files, "templates/*.html")
}
