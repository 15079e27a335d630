package f1ap_test_utils

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/free5gc/f1ap/pkg/model"
	"github.com/free5gc/openapi/models"
)

// SNSSAI 代表一個網路切片選擇輔助資訊
type SNSSAI struct {
	SST int32  // Slice/Service Type
	SD  string // Slice Differentiator (hex string, 例如 "010203")
}

// PLMN 代表公共陸地行動網路識別碼
type PLMN struct {
	MCC string // Mobile Country Code (例如 "208")
	MNC string // Mobile Network Code (例如 "93")
}

// CellParams 代表 DU 上一個 cell 的設定
type CellParams struct {
	PLMN        PLMN
	CellID      uint64 // 36 bit NR Cell Identity
	PCI         uint16
	TAC         string // hex string (例如 "000001"),空字串代表不帶 TAC
	Band        uint16
	ARFCN       uint32
	NRB         uint16
	SCS         model.SubcarrierSpacing
	FDD         bool // false 代表 TDD
	Slices      []SNSSAI
	WithSysInfo bool // 帶上 MIB 與 SIB1
}

// F1SetupRequestParams 代表 F1 Setup Request 的參數
type F1SetupRequestParams struct {
	TransactionID uint8
	GNBDUID       uint64
	GNBDUName     string
	Cells         []CellParams
	RRCVersion    model.RRCVersion
}

// F1SetupResponseParams 代表 F1 Setup Response 的參數
type F1SetupResponseParams struct {
	TransactionID   uint8
	GNBCUName       string
	CellsToActivate []model.NRCGI
	RRCVersion      model.RRCVersion
}

// F1SetupFailureParams 代表 F1 Setup Failure 的參數
type F1SetupFailureParams struct {
	TransactionID uint8
	Cause         model.Cause
	TimeToWait    *model.TimeToWait
}

// TestCUConfig 代表測試用的 CU 配置
type TestCUConfig struct {
	CUName         string
	RRCVersion     model.RRCVersion
	SupportedPLMNs []PLMN
	SupportedTACs  map[string][]string // Key: MCC-MNC, Value: 支援的 TAC
	// SupportedSlices 的 key 是 MCC-MNC
	SupportedSlices map[string][]SNSSAI
	MaxCells        int
}

// FakeNetConn 實作一個假的網路連接用於測試
// 每次 Write 都是一個完整的 F1AP 訊息,和 SCTP 一樣保留訊息邊界
type FakeNetConn struct {
	mu      sync.Mutex
	peer    *FakeNetConn
	inbox   chan []byte
	written [][]byte
	closed  bool
}

const inboxSize = 1024

// NewFakeConnPair 建立一對互相連接的 FakeNetConn (DU 端, CU 端)
func NewFakeConnPair() (*FakeNetConn, *FakeNetConn) {
	du := &FakeNetConn{inbox: make(chan []byte, inboxSize)}
	cu := &FakeNetConn{inbox: make(chan []byte, inboxSize)}
	du.peer, cu.peer = cu, du
	return du, cu
}

// Read 讀出下一個訊息;緩衝區不足時回傳 io.ErrShortBuffer
func (f *FakeNetConn) Read(b []byte) (n int, err error) {
	if f.isClosed() {
		return 0, net.ErrClosed
	}
	select {
	case msg, ok := <-f.inbox:
		if !ok {
			return 0, io.EOF
		}
		if len(msg) > len(b) {
			return 0, io.ErrShortBuffer
		}
		return copy(b, msg), nil
	default:
		// 沒有待讀的訊息
		return 0, io.EOF
	}
}

func (f *FakeNetConn) Write(b []byte) (n int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return 0, net.ErrClosed
	}
	msg := append([]byte(nil), b...)
	f.written = append(f.written, msg)
	if f.peer != nil {
		f.peer.inbox <- msg
	}
	return len(b), nil
}

// Written 回傳所有已送出的訊息
func (f *FakeNetConn) Written() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]byte(nil), f.written...)
}

// Pending 回傳尚未讀取的訊息數量
func (f *FakeNetConn) Pending() int {
	return len(f.inbox)
}

func (f *FakeNetConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *FakeNetConn) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *FakeNetConn) LocalAddr() net.Addr {
	return &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 38472}
}

func (f *FakeNetConn) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.ParseIP("127.0.0.2"), Port: 38472}
}

func (f *FakeNetConn) SetDeadline(t time.Time) error      { return nil }
func (f *FakeNetConn) SetReadDeadline(t time.Time) error  { return nil }
func (f *FakeNetConn) SetWriteDeadline(t time.Time) error { return nil }

// Helper functions for converting between types

// PLMNToModels 將 PLMN 轉換為 models.PlmnId
func PLMNToModels(p PLMN) models.PlmnId {
	return models.PlmnId{Mcc: p.MCC, Mnc: p.MNC}
}

// SNSSAIToModels 將 SNSSAI 轉換為 models.Snssai
func SNSSAIToModels(s SNSSAI) models.Snssai {
	return models.Snssai{Sst: s.SST, Sd: s.SD}
}

// TACToModels 將 TAC hex string 轉換為數值 (例如 "000001" -> 1)
func TACToModels(tac string) (uint32, error) {
	v, err := strconv.ParseUint(tac, 16, 24)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// TACFromModels 將 TAC 數值轉換為 6 位 hex string
func TACFromModels(tac uint32) string {
	return fmt.Sprintf("%06x", tac)
}
