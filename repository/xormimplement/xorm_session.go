package xormimplement

import (
	"github.com/pkg/errors"
	"xorm.io/xorm"
)

// Session 由 xorm（ORM）框架具体实现
type Session struct {
	*xorm.Session
}

// Begin 开启一个事务
func (s *Session) Begin() error {
	if err := s.Session.Begin(); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// Close 关闭会话
func (s *Session) Close() error {
	if err := s.Session.Close(); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// Commit 提交事务
func (s *Session) Commit() error {
	if err := s.Session.Commit(); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// Rollback 回滚事务
func (s *Session) Rollback() error {
	if err := s.Session.Rollback(); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
