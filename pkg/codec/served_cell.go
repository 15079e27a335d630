package codec

import (
	"github.com/pkg/errors"

	"github.com/free5gc/aper"
	"github.com/free5gc/f1ap/f1apConvert"
	"github.com/free5gc/f1ap/f1apType"
	"github.com/free5gc/f1ap/internal/container"
	"github.com/free5gc/f1ap/pkg/model"
	"github.com/free5gc/ngap/ngapType"
	"github.com/free5gc/openapi/models"
)

func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidMessage, format, args...)
}

func buildNRCGI(c model.NRCGI) (f1apType.NRCGI, error) {
	var nrcgi f1apType.NRCGI
	plmn, err := f1apConvert.PlmnIdToF1ap(c.PLMN)
	if err != nil {
		return nrcgi, invalidf("nrCgi: %v", err)
	}
	cellID, err := f1apConvert.NRCellIdentityToF1ap(c.NRCellID)
	if err != nil {
		return nrcgi, invalidf("nrCgi: %v", err)
	}
	nrcgi.PLMNIdentity = plmn
	nrcgi.NRCellIdentity = cellID
	return nrcgi, nil
}

func (d *decodeState) parseNRCGI(where string, ie *f1apType.NRCGI) (model.NRCGI, error) {
	var c model.NRCGI
	plmn, err := f1apConvert.PlmnIdToModels(ie.PLMNIdentity)
	if err != nil {
		return c, errors.Wrapf(ErrUnsupportedValue, "%s: %v", where, err)
	}
	cellID, err := f1apConvert.NRCellIdentityToModels(ie.NRCellIdentity)
	if err != nil {
		return c, errors.Wrapf(ErrUnsupportedValue, "%s: %v", where, err)
	}
	if err := d.extensions(where, ie.IEExtensions, nil); err != nil {
		return c, err
	}
	c.PLMN = plmn
	c.NRCellID = cellID
	return c, nil
}

func buildNRFreqInfo(f model.FrequencyInfo) f1apType.NRFreqInfo {
	var info f1apType.NRFreqInfo
	info.NRARFCN = int64(f.ARFCN)
	info.FreqBandListNr.List = []f1apType.FreqBandNrItem{
		{FreqBandIndicatorNr: int64(f.Band)},
	}
	return info
}

func (d *decodeState) parseNRFreqInfo(where string, info *f1apType.NRFreqInfo) (model.FrequencyInfo, error) {
	var f model.FrequencyInfo
	bands := info.FreqBandListNr.List
	if len(bands) == 0 {
		return f, errors.Wrapf(ErrMalformed, "%s: empty frequency band list", where)
	}
	if len(bands) > 1 {
		if err := d.apply(d.policy.MultipleFrequencyBands, WarnMultipleFrequencyBands, ErrUnsupportedValue,
			"%s: %d frequency bands, only band %d kept", where, len(bands), bands[0].FreqBandIndicatorNr); err != nil {
			return f, err
		}
	}
	if info.SULInformation != nil {
		if err := d.apply(d.policy.SULBands, WarnSULBands, ErrUnsupportedValue,
			"%s: SUL information dropped", where); err != nil {
			return f, err
		}
	}
	for i := range bands {
		if len(bands[i].SupportedSULBandList.List) == 0 {
			continue
		}
		if err := d.apply(d.policy.SULBands, WarnSULBands, ErrUnsupportedValue,
			"%s: supported SUL bands of band %d dropped", where, bands[i].FreqBandIndicatorNr); err != nil {
			return f, err
		}
		break
	}
	band := bands[0].FreqBandIndicatorNr
	if band < model.MinFrequencyBand || band > model.MaxFrequencyBand {
		return f, errors.Wrapf(ErrUnsupportedValue, "%s: band %d", where, band)
	}
	if err := d.extensions(where, info.IEExtensions, nil); err != nil {
		return f, err
	}
	f.ARFCN = uint32(info.NRARFCN)
	f.Band = uint16(band)
	return f, nil
}

func buildTxBandwidth(bw model.TxBandwidth) (f1apType.TransmissionBandwidth, error) {
	var tb f1apType.TransmissionBandwidth
	nrb, err := f1apConvert.NRBToF1ap(bw.NRB)
	if err != nil {
		return tb, invalidf("transmission bandwidth: %v", err)
	}
	tb.NRSCS.Value = aper.Enumerated(bw.SCS)
	tb.NRNRB.Value = nrb
	return tb, nil
}

func (d *decodeState) parseTxBandwidth(where string, tb *f1apType.TransmissionBandwidth) (model.TxBandwidth, error) {
	var bw model.TxBandwidth
	if tb.NRSCS.Value > f1apType.NRSCSPresentScs120 {
		return bw, errors.Wrapf(ErrUnsupportedValue, "%s: scs %d", where, tb.NRSCS.Value)
	}
	nrb, err := f1apConvert.NRBToModels(tb.NRNRB.Value)
	if err != nil {
		return bw, errors.Wrapf(ErrUnsupportedValue, "%s: %v", where, err)
	}
	if err := d.extensions(where, tb.IEExtensions, nil); err != nil {
		return bw, err
	}
	bw.SCS = model.SubcarrierSpacing(tb.NRSCS.Value)
	bw.NRB = nrb
	return bw, nil
}

func buildNRModeInfo(info *model.ServedCellInfo) (f1apType.NRModeInfo, error) {
	var mode f1apType.NRModeInfo
	switch info.Mode {
	case model.DuplexModeFDD:
		ulBW, err := buildTxBandwidth(info.FDD.ULTxBW)
		if err != nil {
			return mode, err
		}
		dlBW, err := buildTxBandwidth(info.FDD.DLTxBW)
		if err != nil {
			return mode, err
		}
		mode.Present = f1apType.NRModeInfoPresentFDD
		mode.FDD = &f1apType.FDDInfo{
			ULNRFreqInfo:            buildNRFreqInfo(info.FDD.ULFreqInfo),
			DLNRFreqInfo:            buildNRFreqInfo(info.FDD.DLFreqInfo),
			ULTransmissionBandwidth: ulBW,
			DLTransmissionBandwidth: dlBW,
		}
	case model.DuplexModeTDD:
		bw, err := buildTxBandwidth(info.TDD.TxBW)
		if err != nil {
			return mode, err
		}
		mode.Present = f1apType.NRModeInfoPresentTDD
		mode.TDD = &f1apType.TDDInfo{
			NRFreqInfo:            buildNRFreqInfo(info.TDD.FreqInfo),
			TransmissionBandwidth: bw,
		}
	default:
		return mode, invalidf("duplex mode %s", info.Mode)
	}
	return mode, nil
}

func (d *decodeState) parseNRModeInfo(where string, mode *f1apType.NRModeInfo, info *model.ServedCellInfo) error {
	switch mode.Present {
	case f1apType.NRModeInfoPresentFDD:
		fdd := mode.FDD
		if fdd == nil {
			return errors.Wrapf(ErrMalformed, "%s: FDD info missing", where)
		}
		var m model.FDDInfo
		var err error
		if m.ULFreqInfo, err = d.parseNRFreqInfo(where+" ul", &fdd.ULNRFreqInfo); err != nil {
			return err
		}
		if m.DLFreqInfo, err = d.parseNRFreqInfo(where+" dl", &fdd.DLNRFreqInfo); err != nil {
			return err
		}
		if m.ULTxBW, err = d.parseTxBandwidth(where+" ul", &fdd.ULTransmissionBandwidth); err != nil {
			return err
		}
		if m.DLTxBW, err = d.parseTxBandwidth(where+" dl", &fdd.DLTransmissionBandwidth); err != nil {
			return err
		}
		if err = d.extensions(where, fdd.IEExtensions, nil); err != nil {
			return err
		}
		info.Mode = model.DuplexModeFDD
		info.FDD = &m
	case f1apType.NRModeInfoPresentTDD:
		tdd := mode.TDD
		if tdd == nil {
			return errors.Wrapf(ErrMalformed, "%s: TDD info missing", where)
		}
		var m model.TDDInfo
		var err error
		if m.FreqInfo, err = d.parseNRFreqInfo(where, &tdd.NRFreqInfo); err != nil {
			return err
		}
		if m.TxBW, err = d.parseTxBandwidth(where, &tdd.TransmissionBandwidth); err != nil {
			return err
		}
		if err = d.extensions(where, tdd.IEExtensions, nil); err != nil {
			return err
		}
		info.Mode = model.DuplexModeTDD
		info.TDD = &m
	case f1apType.NRModeInfoPresentChoiceExtensions:
		return errors.Wrapf(ErrUnsupportedValue, "%s: NR mode info extension", where)
	default:
		return errors.Wrapf(ErrMalformed, "%s: NR mode info present %d", where, mode.Present)
	}
	return nil
}

func buildServedPLMN(plmn ngapType.PLMNIdentity, nssai []models.Snssai) (f1apType.ServedPLMNsItem, error) {
	item := f1apType.ServedPLMNsItem{PLMNIdentity: plmn}
	if len(nssai) == 0 {
		return item, nil
	}
	var slices f1apType.SliceSupportList
	for _, s := range nssai {
		snssai, err := f1apConvert.SNssaiToF1ap(s)
		if err != nil {
			return item, invalidf("nssai: %v", err)
		}
		slices.List = append(slices.List, f1apType.SliceSupportItem{SNSSAI: snssai})
	}
	var ext container.ExtList
	ext.Add(f1apType.ProtocolIEIDTAISliceSupportList, f1apType.CriticalityPresentIgnore, slices, "")
	if err := ext.Err(); err != nil {
		return item, invalidf("%v", err)
	}
	item.IEExtensions = ext.Container()
	return item, nil
}

func (d *decodeState) parseServedPLMN(where string, item *f1apType.ServedPLMNsItem) ([]models.Snssai, error) {
	var nssai []models.Snssai
	err := d.extensions(where, item.IEExtensions, func(ext *f1apType.ProtocolExtensionField) (bool, error) {
		if ext.Id.Value != f1apType.ProtocolIEIDTAISliceSupportList {
			return false, nil
		}
		var slices f1apType.SliceSupportList
		if err := d.unmarshal(where+" slice support list", ext.ExtensionValue, &slices, ""); err != nil {
			return true, err
		}
		for i := range slices.List {
			s, err := f1apConvert.SNssaiToModels(slices.List[i].SNSSAI)
			if err != nil {
				return true, errors.Wrapf(ErrUnsupportedValue, "%s: %v", where, err)
			}
			nssai = append(nssai, s)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return nssai, nil
}

func buildServedCellInformation(info *model.ServedCellInfo) (f1apType.ServedCellInformation, error) {
	var sci f1apType.ServedCellInformation
	nrcgi, err := buildNRCGI(info.NRCGI)
	if err != nil {
		return sci, err
	}
	sci.NRCGI = nrcgi
	sci.NRPCI.Value = int64(info.NRPCI)
	if info.TAC != nil {
		tac, err := f1apConvert.TACToF1ap(*info.TAC)
		if err != nil {
			return sci, invalidf("%v", err)
		}
		sci.FiveGSTAC = tac
	}
	plmnItem, err := buildServedPLMN(nrcgi.PLMNIdentity, info.NSSAI)
	if err != nil {
		return sci, err
	}
	sci.ServedPLMNs.List = []f1apType.ServedPLMNsItem{plmnItem}
	if sci.NRModeInfo, err = buildNRModeInfo(info); err != nil {
		return sci, err
	}
	sci.MeasurementTimingConfiguration = cloneBytes(info.MeasurementTimingConfig)
	return sci, nil
}

func (d *decodeState) parseServedCellInformation(where string, sci *f1apType.ServedCellInformation) (model.ServedCellInfo, error) {
	var info model.ServedCellInfo
	var err error
	if info.NRCGI, err = d.parseNRCGI(where, &sci.NRCGI); err != nil {
		return info, err
	}
	if sci.NRPCI.Value < 0 || sci.NRPCI.Value > model.MaxNRPCI {
		return info, errors.Wrapf(ErrUnsupportedValue, "%s: nrPci %d", where, sci.NRPCI.Value)
	}
	info.NRPCI = uint16(sci.NRPCI.Value)
	if sci.FiveGSTAC != nil {
		tac, err := f1apConvert.TACToModels(*sci.FiveGSTAC)
		if err != nil {
			return info, errors.Wrapf(ErrUnsupportedValue, "%s: %v", where, err)
		}
		info.TAC = &tac
	}
	if sci.ConfiguredEPSTAC != nil {
		d.warn(WarnIgnoredField, "%s: configured EPS TAC dropped", where)
	}

	plmns := sci.ServedPLMNs.List
	if len(plmns) == 0 {
		return info, errors.Wrapf(ErrMalformed, "%s: empty served PLMNs", where)
	}
	if len(plmns) > 1 {
		if err := d.apply(d.policy.MultipleServedPLMNs, WarnMultipleServedPLMNs, ErrUnsupportedValue,
			"%s: %d served PLMNs, only the first kept", where, len(plmns)); err != nil {
			return info, err
		}
	}
	if info.NSSAI, err = d.parseServedPLMN(where, &plmns[0]); err != nil {
		return info, err
	}

	if err := d.parseNRModeInfo(where, &sci.NRModeInfo, &info); err != nil {
		return info, err
	}
	if len(sci.MeasurementTimingConfiguration) == 0 {
		return info, errors.Wrapf(ErrMalformed, "%s: empty measurementTimingConfiguration", where)
	}
	info.MeasurementTimingConfig = cloneBytes(sci.MeasurementTimingConfiguration)
	if err := d.extensions(where, sci.IEExtensions, nil); err != nil {
		return info, err
	}
	return info, nil
}

func buildDUSystemInformation(si *model.SystemInfo) *f1apType.GNBDUSystemInformation {
	if si == nil {
		return nil
	}
	return &f1apType.GNBDUSystemInformation{
		MIBMessage:  cloneBytes(si.MIB),
		SIB1Message: cloneBytes(si.SIB1),
	}
}

func (d *decodeState) parseDUSystemInformation(where string, si *f1apType.GNBDUSystemInformation) (*model.SystemInfo, error) {
	if si == nil {
		return nil, nil
	}
	if len(si.MIBMessage) == 0 || len(si.SIB1Message) == 0 {
		return nil, errors.Wrapf(ErrMalformed, "%s: system information without MIB or SIB1", where)
	}
	if err := d.extensions(where, si.IEExtensions, nil); err != nil {
		return nil, err
	}
	return &model.SystemInfo{
		MIB:  cloneBytes(si.MIBMessage),
		SIB1: cloneBytes(si.SIB1Message),
	}, nil
}
