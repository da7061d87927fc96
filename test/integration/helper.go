// Package integration 通过真实HTTP连接驱动完整应用
package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/interface/http/router/routertest"
)

// Timeout HTTP请求超时时间
const Timeout = 10 * time.Second

// Response 统一响应结构,成功带message,失败带error
type Response struct {
	Status  int             `json:"-"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// Server 监听本地端口的测试服务
type Server struct {
	t      *testing.T
	URL    string
	client *http.Client
}

// NewServer 启动服务,测试结束时关闭
func NewServer(t *testing.T, opts ...routertest.Option) *Server {
	t.Helper()
	app := routertest.New(t, opts...)
	srv := httptest.NewServer(app.Engine)
	t.Cleanup(srv.Close)
	return &Server{t: t, URL: srv.URL, client: &http.Client{Timeout: Timeout}}
}

// PostForm 表单提交
func (s *Server) PostForm(path string, form url.Values) *Response {
	s.t.Helper()
	req, err := http.NewRequest(http.MethodPost, s.URL+path, strings.NewReader(form.Encode()))
	require.NoError(s.t, err, "创建HTTP请求失败")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req)
}

// Get 发送GET请求
func (s *Server) Get(path string) *Response {
	s.t.Helper()
	req, err := http.NewRequest(http.MethodGet, s.URL+path, nil)
	require.NoError(s.t, err, "创建HTTP请求失败")
	return s.do(req)
}

func (s *Server) do(req *http.Request) *Response {
	s.t.Helper()
	resp, err := s.client.Do(req)
	require.NoError(s.t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err, "读取响应体失败")

	var result Response
	require.NoError(s.t, json.Unmarshal(body, &result), "解析JSON响应失败: %s", string(body))
	result.Status = resp.StatusCode
	return &result
}

// Decode 解析data字段
func Decode(t *testing.T, resp *Response, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Data, v), "解析data失败: %s", string(resp.Data))
}

// Seed 建表并写入初始馆藏
func (s *Server) Seed() {
	s.t.Helper()
	for _, path := range []string{"/initialize_db", "/populate_db", "/populate_associations"} {
		resp := s.PostForm(path, nil)
		require.Equal(s.t, http.StatusOK, resp.Status, "%s失败: %s", path, resp.Error)
	}
}

// RegisterUser 注册读者并返回ID
func (s *Server) RegisterUser(name, contact string) uint {
	s.t.Helper()
	resp := s.PostForm("/register_user", url.Values{"name": {name}, "contactDetails": {contact}})
	require.Equal(s.t, http.StatusCreated, resp.Status, "注册失败: %s", resp.Error)

	var u struct {
		ID uint `json:"id"`
	}
	Decode(s.t, resp, &u)
	return u.ID
}

// CreateCart 为读者创建借书车并返回车ID
func (s *Server) CreateCart(userID uint) uint {
	s.t.Helper()
	resp := s.PostForm("/create_cart", url.Values{"userID": {itoa(userID)}})
	require.Equal(s.t, http.StatusCreated, resp.Status, "创建借书车失败: %s", resp.Error)

	var c struct {
		CartID uint `json:"cartID"`
	}
	Decode(s.t, resp, &c)
	return c.CartID
}

// AddToCart 把书放进借书车
func (s *Server) AddToCart(cartID, bookID uint) {
	s.t.Helper()
	resp := s.PostForm("/add_to_cart", url.Values{"cartID": {itoa(cartID)}, "bookID": {itoa(bookID)}})
	require.Equal(s.t, http.StatusCreated, resp.Status, "加入借书车失败: %s", resp.Error)
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
