package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func up(v uint) *uint { return &v }

func TestParsePagination(t *testing.T) {
	a := &App{}

	// 默认值
	showAll, page, limit := a.parsePagination(nil, nil)
	assert.False(t, showAll)
	assert.Equal(t, 0, page)
	assert.Equal(t, 100, limit)

	// 页码从 1 开始，内部从 0 开始
	showAll, page, limit = a.parsePagination(up(3), up(20))
	assert.False(t, showAll)
	assert.Equal(t, 2, page)
	assert.Equal(t, 20, limit)

	// 特殊参数：展示全部
	showAll, _, _ = a.parsePagination(up(0), up(0))
	assert.True(t, showAll)
}

func TestCalcMaxPage(t *testing.T) {
	a := &App{}

	assert.EqualValues(t, 1, a.calcMaxPage(1000, true, -1))
	assert.EqualValues(t, 5, a.calcMaxPage(100, false, 20))
	assert.EqualValues(t, 6, a.calcMaxPage(101, false, 20))
	assert.EqualValues(t, 0, a.calcMaxPage(0, false, 20))
}
