package f1apConvert

import (
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/free5gc/aper"
	"github.com/free5gc/ngap/ngapType"
	"github.com/free5gc/openapi/models"
)

func TestPlmnIdConversion(t *testing.T) {
	Convey("PLMN identity 轉換", t, func() {
		Convey("兩位數 MNC 以 f 填充", func() {
			plmn, err := PlmnIdToF1ap(models.PlmnId{Mcc: "208", Mnc: "93"})
			So(err, ShouldBeNil)
			So([]byte(plmn.Value), ShouldResemble, []byte{0x02, 0xf8, 0x39})

			back, err := PlmnIdToModels(plmn)
			So(err, ShouldBeNil)
			So(back, ShouldResemble, models.PlmnId{Mcc: "208", Mnc: "93"})
		})

		Convey("三位數 MNC", func() {
			plmn, err := PlmnIdToF1ap(models.PlmnId{Mcc: "001", Mnc: "001"})
			So(err, ShouldBeNil)
			back, err := PlmnIdToModels(plmn)
			So(err, ShouldBeNil)
			So(back.Mnc, ShouldEqual, "001")
		})

		Convey("非法的 MCC/MNC 被拒絕", func() {
			for _, p := range []models.PlmnId{
				{Mcc: "20", Mnc: "93"},
				{Mcc: "2a8", Mnc: "93"},
				{Mcc: "208", Mnc: "9"},
				{Mcc: "208", Mnc: "9312"},
			} {
				_, err := PlmnIdToF1ap(p)
				So(errors.Is(err, ErrInvalidPlmnId), ShouldBeTrue)
			}
		})

		Convey("長度錯誤的 PLMN", func() {
			_, err := PlmnIdToModels(ngapType.PLMNIdentity{Value: aper.OctetString{0x02}})
			So(errors.Is(err, ErrInvalidPlmnId), ShouldBeTrue)
		})
	})
}

func TestNRCellIdentityConversion(t *testing.T) {
	Convey("36 bit NR cell identity", t, func() {
		for _, id := range []uint64{0, 1, 0xabcdef012, MaxNRCellIdentity} {
			nci, err := NRCellIdentityToF1ap(id)
			So(err, ShouldBeNil)
			So(nci.Value.BitLength, ShouldEqual, uint64(36))
			So(len(nci.Value.Bytes), ShouldEqual, 5)
			So(nci.Value.Bytes[4]&0x0f, ShouldEqual, byte(0))

			back, err := NRCellIdentityToModels(nci)
			So(err, ShouldBeNil)
			So(back, ShouldEqual, id)
		}

		Convey("MSB first", func() {
			nci, err := NRCellIdentityToF1ap(0x800000000)
			So(err, ShouldBeNil)
			So(nci.Value.Bytes[0], ShouldEqual, byte(0x80))
		})

		Convey("超過 36 bits", func() {
			_, err := NRCellIdentityToF1ap(MaxNRCellIdentity + 1)
			So(errors.Is(err, ErrInvalidNRCellIdentity), ShouldBeTrue)
		})
	})
}

func TestTACConversion(t *testing.T) {
	Convey("24 bit TAC", t, func() {
		tac, err := TACToF1ap(0x000102)
		So(err, ShouldBeNil)
		So([]byte(tac.Value), ShouldResemble, []byte{0x00, 0x01, 0x02})

		back, err := TACToModels(*tac)
		So(err, ShouldBeNil)
		So(back, ShouldEqual, uint32(0x000102))

		_, err = TACToF1ap(MaxTAC + 1)
		So(errors.Is(err, ErrInvalidTAC), ShouldBeTrue)
	})
}

func TestSNssaiConversion(t *testing.T) {
	Convey("S-NSSAI", t, func() {
		Convey("含 SD", func() {
			s, err := SNssaiToF1ap(models.Snssai{Sst: 1, Sd: "010203"})
			So(err, ShouldBeNil)
			So(s.SD, ShouldNotBeNil)
			back, err := SNssaiToModels(s)
			So(err, ShouldBeNil)
			So(back, ShouldResemble, models.Snssai{Sst: 1, Sd: "010203"})
		})

		Convey("不含 SD", func() {
			s, err := SNssaiToF1ap(models.Snssai{Sst: 2})
			So(err, ShouldBeNil)
			So(s.SD, ShouldBeNil)
			back, err := SNssaiToModels(s)
			So(err, ShouldBeNil)
			So(back.Sd, ShouldEqual, "")
		})

		Convey("非法 SD", func() {
			_, err := SNssaiToF1ap(models.Snssai{Sst: 1, Sd: "xyz"})
			So(errors.Is(err, ErrInvalidSnssai), ShouldBeTrue)
			_, err = SNssaiToF1ap(models.Snssai{Sst: 300})
			So(errors.Is(err, ErrInvalidSnssai), ShouldBeTrue)
		})
	})
}

func TestNRBTable(t *testing.T) {
	Convey("NRNRB 查表對稱", t, func() {
		for i, nrb := range NRBValues() {
			idx, err := NRBToF1ap(nrb)
			So(err, ShouldBeNil)
			So(idx, ShouldEqual, aper.Enumerated(i))

			back, err := NRBToModels(idx)
			So(err, ShouldBeNil)
			So(back, ShouldEqual, nrb)
		}

		Convey("不在表內的值被拒絕", func() {
			for _, nrb := range []uint16{0, 10, 12, 100, 274, 1000} {
				_, err := NRBToF1ap(nrb)
				So(errors.Is(err, ErrNRBNotInTable), ShouldBeTrue)
			}
			_, err := NRBToModels(29)
			So(errors.Is(err, ErrNRBNotInTable), ShouldBeTrue)
		})
	})
}
