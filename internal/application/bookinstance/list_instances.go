package bookinstance

import (
	"context"

	"github.com/xiebiao/library/internal/domain/bookinstance"
)

// ListInstancesUseCase 副本列表用例
type ListInstancesUseCase struct {
	instanceService bookinstance.Service
}

// NewListInstancesUseCase 创建副本列表用例
func NewListInstancesUseCase(instanceService bookinstance.Service) *ListInstancesUseCase {
	return &ListInstancesUseCase{instanceService: instanceService}
}

// Execute 全部副本,按所属图书书名升序(稳定排序)
func (uc *ListInstancesUseCase) Execute(ctx context.Context) ([]*bookinstance.BookInstance, error) {
	return uc.instanceService.ListInstances(ctx)
}

// InstanceDetailUseCase 副本详情用例
type InstanceDetailUseCase struct {
	instanceService bookinstance.Service
}

// NewInstanceDetailUseCase 创建副本详情用例
func NewInstanceDetailUseCase(instanceService bookinstance.Service) *InstanceDetailUseCase {
	return &InstanceDetailUseCase{instanceService: instanceService}
}

// Execute 副本详情,不存在返回ErrBookInstanceNotFound
func (uc *InstanceDetailUseCase) Execute(ctx context.Context, id uint) (*bookinstance.BookInstance, error) {
	return uc.instanceService.GetInstance(ctx, id)
}
