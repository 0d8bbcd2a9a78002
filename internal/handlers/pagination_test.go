package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		rows     int64
		pageSize int
		want     int
	}{
		{0, 20, 1},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{41, 20, 3},
		{100, 100, 1},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.rows, tc.pageSize); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.rows, tc.pageSize, got, tc.want)
		}
	}
}

func TestClampPage(t *testing.T) {
	cases := []struct {
		page, totalPages, want int
	}{
		{0, 5, 1},
		{-3, 5, 1},
		{1, 5, 1},
		{5, 5, 5},
		{9, 5, 5},
		{2, 1, 1},
	}
	for _, tc := range cases {
		if got := ClampPage(tc.page, tc.totalPages); got != tc.want {
			t.Errorf("ClampPage(%d, %d) = %d, want %d", tc.page, tc.totalPages, got, tc.want)
		}
	}
}

func TestPageParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		query        string
		wantPage     int
		wantPageSize int
	}{
		{"", 1, DefaultPageSize},
		{"page=3&pageSize=10", 3, 10},
		{"page=-2&pageSize=0", 1, DefaultPageSize},
		{"page=2&pageSize=9999", 2, MaxPageSize},
		{"page=abc&pageSize=xyz", 1, DefaultPageSize},
	}

	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/api/orders?"+tc.query, nil)

		page, pageSize := PageParams(c)
		if page != tc.wantPage || pageSize != tc.wantPageSize {
			t.Errorf("PageParams(%q) = (%d, %d), want (%d, %d)",
				tc.query, page, pageSize, tc.wantPage, tc.wantPageSize)
		}
	}
}
