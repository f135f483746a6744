package bookinstance

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/bookinstance"
	"github.com/xiebiao/library/pkg/form"
	"github.com/xiebiao/library/pkg/metrics"
)

// 表单错误消息
const (
	msgBookRequired    = "Book must be specified"
	msgBookNotFound    = "Book not found"
	msgImprintRequired = "Imprint must be specified"
	msgInvalidStatus   = "Invalid status"
	msgInvalidDate     = "Invalid date"
	msgDueBackRequired = "Due date must be specified when the copy is loaned"
)

var instanceForm = form.NewSchema(
	form.NewField("book",
		form.Trim(),
		form.Required(msgBookRequired),
		form.Numeric(msgBookRequired),
	),
	form.NewField("imprint",
		form.Trim(),
		form.Required(msgImprintRequired),
		form.MaxLen(200, "Imprint is too long"),
	),
	form.NewField("status",
		form.Trim(),
		form.Default(string(bookinstance.StatusMaintenance)),
		form.OneOf(msgInvalidStatus, bookinstance.StatusValues()...),
	),
	form.NewField("due_back", form.Trim(), form.OptionalDate(msgInvalidDate)),
)

// CreateInstanceRequest 新建副本请求DTO(表单原始值)
type CreateInstanceRequest struct {
	Book    string // 图书ID
	Imprint string
	Status  string // 为空时默认Maintenance
	DueBack string // YYYY-MM-DD,可为空
}

func (r CreateInstanceRequest) values() map[string]string {
	return map[string]string{
		"book":     r.Book,
		"imprint":  r.Imprint,
		"status":   r.Status,
		"due_back": r.DueBack,
	}
}

// CreateInstanceResult 新建副本结果
// 校验失败时Instance为nil,Books为表单下拉框所需的图书列表
type CreateInstanceResult struct {
	Instance *bookinstance.BookInstance
	Form     *form.Result
	Books    []*book.Book
}

// CreateInstanceUseCase 新建副本用例
type CreateInstanceUseCase struct {
	instanceService bookinstance.Service
	bookService     book.Service
	logger          *zap.Logger
}

// NewCreateInstanceUseCase 创建新建副本用例
func NewCreateInstanceUseCase(instanceService bookinstance.Service, bookService book.Service, logger *zap.Logger) *CreateInstanceUseCase {
	return &CreateInstanceUseCase{
		instanceService: instanceService,
		bookService:     bookService,
		logger:          logger,
	}
}

// Books 表单下拉框的图书列表
func (uc *CreateInstanceUseCase) Books(ctx context.Context) ([]*book.Book, error) {
	return uc.bookService.ListBooks(ctx)
}

// Execute 执行新建副本用例
// 1. 字段规则校验
// 2. 引用校验:图书必须存在
// 3. 跨字段校验:Loaned状态必须填写应还日期
// 4. 保存
func (uc *CreateInstanceUseCase) Execute(ctx context.Context, req CreateInstanceRequest) (*CreateInstanceResult, error) {
	res := instanceForm.Validate(req.values())

	var bookID uint
	if res.ErrorFor("book") == "" {
		id, err := strconv.ParseUint(res.Value("book"), 10, 64)
		if err != nil || id == 0 {
			res.AddError("book", msgBookRequired)
		} else {
			exists, err := uc.bookService.Exists(ctx, uint(id))
			if err != nil {
				return nil, err
			}
			if !exists {
				res.AddError("book", msgBookNotFound)
			}
			bookID = uint(id)
		}
	}

	status := bookinstance.Status(res.Value("status"))
	if res.ErrorFor("status") == "" && res.ErrorFor("due_back") == "" &&
		status == bookinstance.StatusLoaned && res.Date("due_back") == nil {
		res.AddError("due_back", msgDueBackRequired)
	}

	if !res.Valid() {
		metrics.RecordValidationFailure("bookinstance")
		books, err := uc.Books(ctx)
		if err != nil {
			return nil, err
		}
		return &CreateInstanceResult{Form: res, Books: books}, nil
	}

	bi := bookinstance.NewBookInstance(bookID, res.Value("imprint"), status, res.Date("due_back"))
	if err := uc.instanceService.CreateInstance(ctx, bi); err != nil {
		return nil, err
	}

	metrics.RecordCreated("bookinstance")
	uc.logger.Info("副本已创建",
		zap.Uint("instance_id", bi.ID),
		zap.Uint("book_id", bi.BookID),
		zap.String("status", string(bi.Status)))

	return &CreateInstanceResult{Instance: bi, Form: res}, nil
}
