package f1ap_test_utils

import (
	"fmt"
	"net"
	"sort"
	"sync"

	"github.com/free5gc/f1ap"
	"github.com/free5gc/f1ap/pkg/codec"
	"github.com/free5gc/f1ap/pkg/model"
)

const maxMessageSize = 64 << 10

func readMessage(conn net.Conn, c *codec.Codec) (model.Message, []codec.Warning, []byte, error) {
	buf := make([]byte, maxMessageSize)
	n, err := conn.Read(buf)
	if err != nil {
		return nil, nil, nil, err
	}
	b := buf[:n]
	m, warnings, err := c.DecodeWithWarnings(b)
	return m, warnings, b, err
}

func writeMessage(conn net.Conn, c *codec.Codec, m model.Message) ([]byte, error) {
	b, err := c.Encode(m)
	if err != nil {
		return nil, err
	}
	if _, err = conn.Write(b); err != nil {
		return nil, err
	}
	return b, nil
}

// FakeDU 模擬一個 gNB-DU 用於測試
type FakeDU struct {
	Conn           net.Conn
	GNBDUID        uint64
	DUName         string
	Cells          []CellParams
	RRCVersion     model.RRCVersion
	MessageBuilder *F1APMessageBuilder
	Codec          *codec.Codec

	mu            sync.Mutex
	transactionID uint8
	lastTID       uint8
}

// NewFakeDU 建立一個新的 Fake DU
func NewFakeDU(conn net.Conn, duName string, gnbDUID uint64) *FakeDU {
	return &FakeDU{
		Conn:           conn,
		GNBDUID:        gnbDUID,
		DUName:         duName,
		RRCVersion:     model.RRCVersion{16, 6, 0},
		MessageBuilder: NewF1APMessageBuilder(),
		Codec:          codec.New(),
	}
}

// AddCell 新增 DU 服務的 cell
func (d *FakeDU) AddCell(cell CellParams) {
	d.Cells = append(d.Cells, cell)
}

// nextTransactionID 取得下一個 Transaction ID (0..255 循環)
func (d *FakeDU) nextTransactionID() uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.transactionID++
	d.lastTID = d.transactionID
	return d.transactionID
}

// LastTransactionID 回傳最近一次送出的 Transaction ID
func (d *FakeDU) LastTransactionID() uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastTID
}

// SendF1SetupRequest 編碼並發送 F1 Setup Request
func (d *FakeDU) SendF1SetupRequest() (*model.F1SetupRequest, error) {
	req, err := d.MessageBuilder.BuildF1SetupRequest(F1SetupRequestParams{
		TransactionID: d.nextTransactionID(),
		GNBDUID:       d.GNBDUID,
		GNBDUName:     d.DUName,
		Cells:         d.Cells,
		RRCVersion:    d.RRCVersion,
	})
	if err != nil {
		return nil, err
	}
	if _, err = writeMessage(d.Conn, d.Codec, req); err != nil {
		return nil, err
	}
	return req, nil
}

// SendInvalidF1SetupRequest 發送無效的 F1 Setup Request (用於負面測試)
func (d *FakeDU) SendInvalidF1SetupRequest(invalidType string) ([]byte, error) {
	b, err := d.MessageBuilder.BuildInvalidF1SetupRequest(invalidType)
	if err != nil {
		return nil, err
	}
	if _, err = d.Conn.Write(b); err != nil {
		return nil, err
	}
	return b, nil
}

// SendGNBDUConfigurationUpdate 發送 gNB-DU Configuration Update 並同步本地的 cell 列表
func (d *FakeDU) SendGNBDUConfigurationUpdate(toAdd []CellParams, toDelete []model.NRCGI) (
	*model.GNBDUConfigurationUpdate, error,
) {
	update, err := d.MessageBuilder.BuildGNBDUConfigurationUpdate(d.nextTransactionID(), toAdd, toDelete)
	if err != nil {
		return nil, err
	}
	if _, err = writeMessage(d.Conn, d.Codec, update); err != nil {
		return nil, err
	}

	d.Cells = append(d.Cells, toAdd...)
	for _, cgi := range toDelete {
		for i := range d.Cells {
			if NRCGIOf(d.Cells[i]).Equal(cgi) {
				d.Cells = append(d.Cells[:i], d.Cells[i+1:]...)
				break
			}
		}
	}
	return update, nil
}

// Receive 接收並解碼下一個訊息
func (d *FakeDU) Receive() (model.Message, error) {
	m, _, _, err := readMessage(d.Conn, d.Codec)
	return m, err
}

// ExpectF1SetupResponse 期待收到 F1 Setup Response,且 Transaction ID 相符
func (d *FakeDU) ExpectF1SetupResponse() (*model.F1SetupResponse, error) {
	m, err := d.Receive()
	if err != nil {
		return nil, err
	}
	resp, ok := m.(*model.F1SetupResponse)
	if !ok {
		return nil, fmt.Errorf("expected F1SetupResponse, got %s", m.MessageType())
	}
	if resp.TransactionID != d.LastTransactionID() {
		return nil, fmt.Errorf("transaction ID %d, expected %d", resp.TransactionID, d.LastTransactionID())
	}
	return resp, nil
}

// ExpectF1SetupFailure 期待收到 F1 Setup Failure
// expectedGroup: 期待的 Cause 類別,CauseGroupNone 代表不檢查
func (d *FakeDU) ExpectF1SetupFailure(expectedGroup model.CauseGroup) (*model.F1SetupFailure, error) {
	m, err := d.Receive()
	if err != nil {
		return nil, err
	}
	fail, ok := m.(*model.F1SetupFailure)
	if !ok {
		return nil, fmt.Errorf("expected F1SetupFailure, got %s", m.MessageType())
	}
	if expectedGroup != model.CauseGroupNone && fail.Cause.Group != expectedGroup {
		return nil, fmt.Errorf("cause %s, expected group %s", fail.Cause, expectedGroup)
	}
	return fail, nil
}

// ExpectGNBDUConfigurationUpdateAcknowledge 期待收到 gNB-DU Configuration Update Acknowledge
func (d *FakeDU) ExpectGNBDUConfigurationUpdateAcknowledge() error {
	m, err := d.Receive()
	if err != nil {
		return err
	}
	ack, ok := m.(*model.GNBDUConfigurationUpdateAcknowledge)
	if !ok {
		return fmt.Errorf("expected GNBDUConfigurationUpdateAcknowledge, got %s", m.MessageType())
	}
	if ack.TransactionID != d.LastTransactionID() {
		return fmt.Errorf("transaction ID %d, expected %d", ack.TransactionID, d.LastTransactionID())
	}
	return nil
}

// ExpectGNBDUConfigurationUpdateFailure 期待收到 gNB-DU Configuration Update Failure
func (d *FakeDU) ExpectGNBDUConfigurationUpdateFailure() (*model.GNBDUConfigurationUpdateFailure, error) {
	m, err := d.Receive()
	if err != nil {
		return nil, err
	}
	fail, ok := m.(*model.GNBDUConfigurationUpdateFailure)
	if !ok {
		return nil, fmt.Errorf("expected GNBDUConfigurationUpdateFailure, got %s", m.MessageType())
	}
	return fail, nil
}

// Close 關閉連接
func (d *FakeDU) Close() error {
	if d.Conn != nil {
		return d.Conn.Close()
	}
	return nil
}

// String 返回 DU 的字串表示
func (d *FakeDU) String() string {
	return fmt.Sprintf("FakeDU{Name: %s, ID: %d, Cells: %d}", d.DUName, d.GNBDUID, len(d.Cells))
}

// FakeCU 模擬一個 gNB-CU,依 TestConfigManager 的配置回應 DU
type FakeCU struct {
	Conn      net.Conn
	Codec     *codec.Codec
	Validator *F1APValidator

	configManager *TestConfigManager
	builder       *F1APMessageBuilder
	activeCells   map[string]model.NRCGI
	warnings      []codec.Warning
}

// NewFakeCU 建立一個新的 Fake CU
func NewFakeCU(conn net.Conn, configManager *TestConfigManager, opts ...codec.Option) *FakeCU {
	return &FakeCU{
		Conn:          conn,
		Codec:         codec.New(opts...),
		Validator:     NewF1APValidator(configManager),
		configManager: configManager,
		builder:       NewF1APMessageBuilder(),
		activeCells:   make(map[string]model.NRCGI),
	}
}

// HandleNext 讀取一個 DU 訊息並回應
// 回傳收到的訊息;解碼失敗時,若能辨識為 F1 Setup Request 則回覆 protocol cause 的 Failure
func (c *FakeCU) HandleNext() (model.Message, error) {
	m, warnings, raw, err := readMessage(c.Conn, c.Codec)
	if err != nil {
		if m == nil && raw != nil && isF1SetupRequest(raw) {
			fail := c.builder.BuildF1SetupFailure(F1SetupFailureParams{Cause: CauseFor(err)})
			if _, werr := writeMessage(c.Conn, c.Codec, fail); werr != nil {
				return nil, werr
			}
		}
		return nil, err
	}
	c.warnings = append(c.warnings, warnings...)

	switch msg := m.(type) {
	case *model.F1SetupRequest:
		return m, c.handleF1SetupRequest(msg)
	case *model.GNBDUConfigurationUpdate:
		return m, c.handleGNBDUConfigurationUpdate(msg)
	default:
		return m, fmt.Errorf("unexpected message %s", m.MessageType())
	}
}

func isF1SetupRequest(b []byte) bool {
	pdu, err := f1ap.Decoder(b)
	if err != nil {
		return false
	}
	mt, _, err := codec.MessageTypeOf(pdu)
	return err == nil && mt == model.MessageTypeF1SetupRequest
}

func (c *FakeCU) handleF1SetupRequest(req *model.F1SetupRequest) error {
	if err := c.Validator.ValidateServedCells(req.Cells); err != nil {
		wait := model.TimeToWait10s
		fail := c.builder.BuildF1SetupFailure(F1SetupFailureParams{
			TransactionID: req.TransactionID,
			Cause:         CauseFor(err),
			TimeToWait:    &wait,
		})
		_, werr := writeMessage(c.Conn, c.Codec, fail)
		return werr
	}

	cfg := c.configManager.GetConfig()
	params := F1SetupResponseParams{
		TransactionID: req.TransactionID,
		GNBCUName:     cfg.CUName,
		RRCVersion:    cfg.RRCVersion,
	}
	c.activeCells = make(map[string]model.NRCGI)
	for _, cell := range req.Cells {
		cgi := cell.Info.NRCGI
		c.activeCells[FormatNRCGI(cgi)] = cgi
		params.CellsToActivate = append(params.CellsToActivate, cgi)
	}
	_, err := writeMessage(c.Conn, c.Codec, c.builder.BuildF1SetupResponse(params))
	return err
}

func (c *FakeCU) handleGNBDUConfigurationUpdate(update *model.GNBDUConfigurationUpdate) error {
	total := len(c.activeCells) + len(update.CellsToAdd) - len(update.CellsToDelete)
	err := c.Validator.ValidateCellsToAdd(total, update.CellsToAdd)
	if err == nil {
		for _, cgi := range update.CellsToDelete {
			if _, ok := c.activeCells[FormatNRCGI(cgi)]; !ok {
				err = fmt.Errorf("cell %s is not active", FormatNRCGI(cgi))
				break
			}
		}
	}
	if err != nil {
		fail := &model.GNBDUConfigurationUpdateFailure{
			Failure: model.Failure{TransactionID: update.TransactionID, Cause: CauseFor(err)},
		}
		_, werr := writeMessage(c.Conn, c.Codec, fail)
		return werr
	}

	for _, cgi := range update.CellsToDelete {
		delete(c.activeCells, FormatNRCGI(cgi))
	}
	for _, cell := range update.CellsToAdd {
		c.activeCells[FormatNRCGI(cell.Info.NRCGI)] = cell.Info.NRCGI
	}
	ack := &model.GNBDUConfigurationUpdateAcknowledge{TransactionID: update.TransactionID}
	_, err = writeMessage(c.Conn, c.Codec, ack)
	return err
}

// ActiveCells 回傳 CU 目前啟用的 cell,依 NR CGI 字串排序
func (c *FakeCU) ActiveCells() []string {
	cells := make([]string, 0, len(c.activeCells))
	for key := range c.activeCells {
		cells = append(cells, key)
	}
	sort.Strings(cells)
	return cells
}

// Warnings 回傳解碼時累積的 warning
func (c *FakeCU) Warnings() []codec.Warning {
	return c.warnings
}
