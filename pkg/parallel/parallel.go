// Package parallel 请求内的并发查询（fan-out/fan-in）
//
// 详情页经常需要两次互不依赖的查询（如"作者"和"该作者的图书"），
// Both同时发起两次查询，等待两者都完成后再返回。
// 任意一个失败都返回第一个错误，调用方不会拿到半份结果。
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Both 并发执行两个查询并等待全部完成
//
// 注意：这里使用零值errgroup.Group而不是errgroup.WithContext，
// 一个查询失败不会取消另一个，取消只来自外部传入的ctx。
//
// 示例：
//
//	a, books, err := parallel.Both(ctx,
//	    func(ctx context.Context) (*author.Author, error) { return authors.GetAuthor(ctx, id) },
//	    func(ctx context.Context) ([]*book.Book, error) { return books.BooksByAuthor(ctx, id) },
//	)
func Both[A, B any](
	ctx context.Context,
	fa func(ctx context.Context) (A, error),
	fb func(ctx context.Context) (B, error),
) (A, B, error) {
	var (
		a A
		b B
		g errgroup.Group
	)

	g.Go(func() error {
		var err error
		a, err = fa(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		b, err = fb(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		var zeroA A
		var zeroB B
		return zeroA, zeroB, err
	}
	return a, b, nil
}
