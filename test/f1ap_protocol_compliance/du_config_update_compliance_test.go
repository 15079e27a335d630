package f1ap_protocol_compliance

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/free5gc/f1ap/pkg/model"
	utils "github.com/free5gc/f1ap/test/f1ap_test_utils"
)

// setupDU 完成 F1 Setup,回傳已連線的 DU 與 CU
func setupDU(t *testing.T, configManager *utils.TestConfigManager, cells ...utils.CellParams) (
	*utils.FakeDU, *utils.FakeCU,
) {
	t.Helper()

	du, cu := newDUCUPair(configManager, "test-du-update")
	for _, c := range cells {
		du.AddCell(c)
	}
	_, err := du.SendF1SetupRequest()
	require.NoError(t, err)
	_, err = cu.HandleNext()
	require.NoError(t, err)
	utils.AssertF1SetupSuccess(t, du)
	return du, cu
}

func secondCell() utils.CellParams {
	cell := utils.DefaultCellParams()
	cell.CellID = 0x2
	cell.PCI = 1
	cell.TAC = "000002"
	return cell
}

// cellWith 以 secondCell 為基礎修改參數
func cellWith(mutate func(*utils.CellParams)) utils.CellParams {
	cell := secondCell()
	mutate(&cell)
	return cell
}

// ==================== 新增 / 刪除 cell ====================

// TestDUConfigUpdate_AddAndDeleteCell 測試 setup 後新增再刪除 cell
func TestDUConfigUpdate_AddAndDeleteCell(t *testing.T) {
	utils.PrintTestSeparator(t, "gNB-DU Configuration Update - Add and Delete Cell")

	configManager := utils.NewTestConfigManager()
	configManager.LoadStandardConfig()

	du, cu := setupDU(t, configManager, utils.DefaultCellParams())
	require.Equal(t, []string{"208-93-000000001"}, cu.ActiveCells())

	// 1. 新增第二個 cell
	update, err := du.SendGNBDUConfigurationUpdate([]utils.CellParams{secondCell()}, nil)
	require.NoError(t, err)
	require.Equal(t, uint8(2), update.TransactionID)

	received, err := cu.HandleNext()
	require.NoError(t, err)
	require.True(t, model.Equal(update, received))
	require.NoError(t, du.ExpectGNBDUConfigurationUpdateAcknowledge())
	require.Equal(t, []string{"208-93-000000001", "208-93-000000002"}, cu.ActiveCells())
	t.Log("✅ Cell 2 added")

	// 2. 刪除第一個 cell
	_, err = du.SendGNBDUConfigurationUpdate(nil, []model.NRCGI{utils.NRCGIOf(utils.DefaultCellParams())})
	require.NoError(t, err)
	_, err = cu.HandleNext()
	require.NoError(t, err)
	require.NoError(t, du.ExpectGNBDUConfigurationUpdateAcknowledge())
	require.Equal(t, []string{"208-93-000000002"}, cu.ActiveCells())
	require.Len(t, du.Cells, 1)
	t.Log("✅ Cell 1 deleted")
}

// TestDUConfigUpdate_EmptyUpdate 測試沒有任何 cell 變更的 update (只有 Transaction ID)
func TestDUConfigUpdate_EmptyUpdate(t *testing.T) {
	utils.PrintTestSeparator(t, "gNB-DU Configuration Update - Empty Update")

	configManager := utils.NewTestConfigManager()
	configManager.LoadStandardConfig()

	du, cu := setupDU(t, configManager, utils.DefaultCellParams())

	_, err := du.SendGNBDUConfigurationUpdate(nil, nil)
	require.NoError(t, err)
	received, err := cu.HandleNext()
	require.NoError(t, err)

	update := received.(*model.GNBDUConfigurationUpdate)
	require.Nil(t, update.CellsToAdd)
	require.Nil(t, update.CellsToModify)
	require.Nil(t, update.CellsToDelete)
	require.Nil(t, update.GNBDUID)

	require.NoError(t, du.ExpectGNBDUConfigurationUpdateAcknowledge())
	t.Log("✅ Absent lists stay absent")
}

// ==================== 拒絕的情境 ====================

// TestDUConfigUpdate_Rejected 測試 CU 拒絕 update 的情境
func TestDUConfigUpdate_Rejected(t *testing.T) {
	utils.PrintTestSeparator(t, "gNB-DU Configuration Update - Rejected")

	testCases := []struct {
		name          string
		restrictive   bool
		toAdd         []utils.CellParams
		toDelete      []model.NRCGI
		expectedGroup model.CauseGroup
	}{
		{
			name:          "Unsupported Slice",
			toAdd:         []utils.CellParams{cellWith(func(c *utils.CellParams) { c.Slices = []utils.SNSSAI{{SST: 2}} })},
			expectedGroup: model.CauseGroupMisc,
		},
		{
			name:          "Unsupported PLMN",
			toAdd:         []utils.CellParams{cellWith(func(c *utils.CellParams) { c.PLMN = utils.PLMN{MCC: "001", MNC: "01"} })},
			expectedGroup: model.CauseGroupMisc,
		},
		{
			name:          "Delete Unknown Cell",
			toDelete:      []model.NRCGI{utils.NRCGIOf(secondCell())},
			expectedGroup: model.CauseGroupMisc,
		},
		{
			name:          "Exceeds Cell Limit",
			restrictive:   true,
			toAdd:         []utils.CellParams{utils.DefaultCellParams()},
			expectedGroup: model.CauseGroupRadioNetwork,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			configManager := utils.NewTestConfigManager()
			if tc.restrictive {
				configManager.LoadRestrictiveConfig()
			} else {
				configManager.LoadStandardConfig()
			}
			first := utils.DefaultCellParams()
			if tc.restrictive {
				first.CellID = 0x10
			}
			du, cu := setupDU(t, configManager, first)

			update, err := du.SendGNBDUConfigurationUpdate(tc.toAdd, tc.toDelete)
			require.NoError(t, err)
			_, err = cu.HandleNext()
			require.NoError(t, err)

			fail, err := du.ExpectGNBDUConfigurationUpdateFailure()
			require.NoError(t, err)
			require.Equal(t, update.TransactionID, fail.TransactionID)
			require.Equal(t, tc.expectedGroup, fail.Cause.Group)
			require.Len(t, cu.ActiveCells(), 1, "a rejected update changes nothing")

			t.Logf("✅ Rejected with cause %s", fail.Cause)
		})
	}
}

// TestDUConfigUpdate_TransactionIDWrap 測試 Transaction ID 超過 255 後回到 0
func TestDUConfigUpdate_TransactionIDWrap(t *testing.T) {
	utils.PrintTestSeparator(t, "gNB-DU Configuration Update - Transaction ID Wrap")

	configManager := utils.NewTestConfigManager()
	configManager.LoadStandardConfig()

	du, cu := setupDU(t, configManager, utils.DefaultCellParams())

	// setup 已經用掉 Transaction ID 1
	for i := 0; i < 256; i++ {
		update, err := du.SendGNBDUConfigurationUpdate(nil, nil)
		require.NoError(t, err)
		_, err = cu.HandleNext()
		require.NoError(t, err)
		require.NoError(t, du.ExpectGNBDUConfigurationUpdateAcknowledge(), "transaction %d", update.TransactionID)
	}
	require.Equal(t, uint8(1), du.LastTransactionID())

	t.Log("✅ Transaction IDs cover the whole 0..255 range")
}
