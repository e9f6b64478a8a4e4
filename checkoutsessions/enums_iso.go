package checkoutsessions

// CountryCode is an ISO 3166-1 alpha-2 country code.
type CountryCode string

const (
	CountryCodeAF CountryCode = "AF"
	CountryCodeAX CountryCode = "AX"
	CountryCodeAL CountryCode = "AL"
	CountryCodeDZ CountryCode = "DZ"
	CountryCodeAS CountryCode = "AS"
	CountryCodeAD CountryCode = "AD"
	CountryCodeAO CountryCode = "AO"
	CountryCodeAI CountryCode = "AI"
	CountryCodeAQ CountryCode = "AQ"
	CountryCodeAG CountryCode = "AG"
	CountryCodeAR CountryCode = "AR"
	CountryCodeAM CountryCode = "AM"
	CountryCodeAW CountryCode = "AW"
	CountryCodeAU CountryCode = "AU"
	CountryCodeAT CountryCode = "AT"
	CountryCodeAZ CountryCode = "AZ"
	CountryCodeBS CountryCode = "BS"
	CountryCodeBH CountryCode = "BH"
	CountryCodeBD CountryCode = "BD"
	CountryCodeBB CountryCode = "BB"
	CountryCodeBY CountryCode = "BY"
	CountryCodeBE CountryCode = "BE"
	CountryCodeBZ CountryCode = "BZ"
	CountryCodeBJ CountryCode = "BJ"
	CountryCodeBM CountryCode = "BM"
	CountryCodeBT CountryCode = "BT"
	CountryCodeBO CountryCode = "BO"
	CountryCodeBQ CountryCode = "BQ"
	CountryCodeBA CountryCode = "BA"
	CountryCodeBW CountryCode = "BW"
	CountryCodeBV CountryCode = "BV"
	CountryCodeBR CountryCode = "BR"
	CountryCodeIO CountryCode = "IO"
	CountryCodeBN CountryCode = "BN"
	CountryCodeBG CountryCode = "BG"
	CountryCodeBF CountryCode = "BF"
	CountryCodeBI CountryCode = "BI"
	CountryCodeKH CountryCode = "KH"
	CountryCodeCM CountryCode = "CM"
	CountryCodeCA CountryCode = "CA"
	CountryCodeCV CountryCode = "CV"
	CountryCodeKY CountryCode = "KY"
	CountryCodeCF CountryCode = "CF"
	CountryCodeTD CountryCode = "TD"
	CountryCodeCL CountryCode = "CL"
	CountryCodeCN CountryCode = "CN"
	CountryCodeCX CountryCode = "CX"
	CountryCodeCC CountryCode = "CC"
	CountryCodeCO CountryCode = "CO"
	CountryCodeKM CountryCode = "KM"
	CountryCodeCG CountryCode = "CG"
	CountryCodeCD CountryCode = "CD"
	CountryCodeCK CountryCode = "CK"
	CountryCodeCR CountryCode = "CR"
	CountryCodeCI CountryCode = "CI"
	CountryCodeHR CountryCode = "HR"
	CountryCodeCU CountryCode = "CU"
	CountryCodeCW CountryCode = "CW"
	CountryCodeCY CountryCode = "CY"
	CountryCodeCZ CountryCode = "CZ"
	CountryCodeDK CountryCode = "DK"
	CountryCodeDJ CountryCode = "DJ"
	CountryCodeDM CountryCode = "DM"
	CountryCodeDO CountryCode = "DO"
	CountryCodeEC CountryCode = "EC"
	CountryCodeEG CountryCode = "EG"
	CountryCodeSV CountryCode = "SV"
	CountryCodeGQ CountryCode = "GQ"
	CountryCodeER CountryCode = "ER"
	CountryCodeEE CountryCode = "EE"
	CountryCodeET CountryCode = "ET"
	CountryCodeFK CountryCode = "FK"
	CountryCodeFO CountryCode = "FO"
	CountryCodeFJ CountryCode = "FJ"
	CountryCodeFI CountryCode = "FI"
	CountryCodeFR CountryCode = "FR"
	CountryCodeGF CountryCode = "GF"
	CountryCodePF CountryCode = "PF"
	CountryCodeTF CountryCode = "TF"
	CountryCodeGA CountryCode = "GA"
	CountryCodeGM CountryCode = "GM"
	CountryCodeGE CountryCode = "GE"
	CountryCodeDE CountryCode = "DE"
	CountryCodeGH CountryCode = "GH"
	CountryCodeGI CountryCode = "GI"
	CountryCodeGR CountryCode = "GR"
	CountryCodeGL CountryCode = "GL"
	CountryCodeGD CountryCode = "GD"
	CountryCodeGP CountryCode = "GP"
	CountryCodeGU CountryCode = "GU"
	CountryCodeGT CountryCode = "GT"
	CountryCodeGG CountryCode = "GG"
	CountryCodeGN CountryCode = "GN"
	CountryCodeGW CountryCode = "GW"
	CountryCodeGY CountryCode = "GY"
	CountryCodeHT CountryCode = "HT"
	CountryCodeHM CountryCode = "HM"
	CountryCodeVA CountryCode = "VA"
	CountryCodeHN CountryCode = "HN"
	CountryCodeHK CountryCode = "HK"
	CountryCodeHU CountryCode = "HU"
	CountryCodeIS CountryCode = "IS"
	CountryCodeIN CountryCode = "IN"
	CountryCodeID CountryCode = "ID"
	CountryCodeIR CountryCode = "IR"
	CountryCodeIQ CountryCode = "IQ"
	CountryCodeIE CountryCode = "IE"
	CountryCodeIM CountryCode = "IM"
	CountryCodeIL CountryCode = "IL"
	CountryCodeIT CountryCode = "IT"
	CountryCodeJM CountryCode = "JM"
	CountryCodeJP CountryCode = "JP"
	CountryCodeJE CountryCode = "JE"
	CountryCodeJO CountryCode = "JO"
	CountryCodeKZ CountryCode = "KZ"
	CountryCodeKE CountryCode = "KE"
	CountryCodeKI CountryCode = "KI"
	CountryCodeKP CountryCode = "KP"
	CountryCodeKR CountryCode = "KR"
	CountryCodeKW CountryCode = "KW"
	CountryCodeKG CountryCode = "KG"
	CountryCodeLA CountryCode = "LA"
	CountryCodeLV CountryCode = "LV"
	CountryCodeLB CountryCode = "LB"
	CountryCodeLS CountryCode = "LS"
	CountryCodeLR CountryCode = "LR"
	CountryCodeLY CountryCode = "LY"
	CountryCodeLI CountryCode = "LI"
	CountryCodeLT CountryCode = "LT"
	CountryCodeLU CountryCode = "LU"
	CountryCodeMO CountryCode = "MO"
	CountryCodeMK CountryCode = "MK"
	CountryCodeMG CountryCode = "MG"
	CountryCodeMW CountryCode = "MW"
	CountryCodeMY CountryCode = "MY"
	CountryCodeMV CountryCode = "MV"
	CountryCodeML CountryCode = "ML"
	CountryCodeMT CountryCode = "MT"
	CountryCodeMH CountryCode = "MH"
	CountryCodeMQ CountryCode = "MQ"
	CountryCodeMR CountryCode = "MR"
	CountryCodeMU CountryCode = "MU"
	CountryCodeYT CountryCode = "YT"
	CountryCodeMX CountryCode = "MX"
	CountryCodeFM CountryCode = "FM"
	CountryCodeMD CountryCode = "MD"
	CountryCodeMC CountryCode = "MC"
	CountryCodeMN CountryCode = "MN"
	CountryCodeME CountryCode = "ME"
	CountryCodeMS CountryCode = "MS"
	CountryCodeMA CountryCode = "MA"
	CountryCodeMZ CountryCode = "MZ"
	CountryCodeMM CountryCode = "MM"
	CountryCodeNA CountryCode = "NA"
	CountryCodeNR CountryCode = "NR"
	CountryCodeNP CountryCode = "NP"
	CountryCodeNL CountryCode = "NL"
	CountryCodeNC CountryCode = "NC"
	CountryCodeNZ CountryCode = "NZ"
	CountryCodeNI CountryCode = "NI"
	CountryCodeNE CountryCode = "NE"
	CountryCodeNG CountryCode = "NG"
	CountryCodeNU CountryCode = "NU"
	CountryCodeNF CountryCode = "NF"
	CountryCodeMP CountryCode = "MP"
	CountryCodeNO CountryCode = "NO"
	CountryCodeOM CountryCode = "OM"
	CountryCodePK CountryCode = "PK"
	CountryCodePW CountryCode = "PW"
	CountryCodePS CountryCode = "PS"
	CountryCodePA CountryCode = "PA"
	CountryCodePG CountryCode = "PG"
	CountryCodePY CountryCode = "PY"
	CountryCodePE CountryCode = "PE"
	CountryCodePH CountryCode = "PH"
	CountryCodePN CountryCode = "PN"
	CountryCodePL CountryCode = "PL"
	CountryCodePT CountryCode = "PT"
	CountryCodePR CountryCode = "PR"
	CountryCodeQA CountryCode = "QA"
	CountryCodeRE CountryCode = "RE"
	CountryCodeRO CountryCode = "RO"
	CountryCodeRU CountryCode = "RU"
	CountryCodeRW CountryCode = "RW"
	CountryCodeBL CountryCode = "BL"
	CountryCodeSH CountryCode = "SH"
	CountryCodeKN CountryCode = "KN"
	CountryCodeLC CountryCode = "LC"
	CountryCodeMF CountryCode = "MF"
	CountryCodePM CountryCode = "PM"
	CountryCodeVC CountryCode = "VC"
	CountryCodeWS CountryCode = "WS"
	CountryCodeSM CountryCode = "SM"
	CountryCodeST CountryCode = "ST"
	CountryCodeSA CountryCode = "SA"
	CountryCodeSN CountryCode = "SN"
	CountryCodeRS CountryCode = "RS"
	CountryCodeSC CountryCode = "SC"
	CountryCodeSL CountryCode = "SL"
	CountryCodeSG CountryCode = "SG"
	CountryCodeSX CountryCode = "SX"
	CountryCodeSK CountryCode = "SK"
	CountryCodeSI CountryCode = "SI"
	CountryCodeSB CountryCode = "SB"
	CountryCodeSO CountryCode = "SO"
	CountryCodeZA CountryCode = "ZA"
	CountryCodeGS CountryCode = "GS"
	CountryCodeSS CountryCode = "SS"
	CountryCodeES CountryCode = "ES"
	CountryCodeLK CountryCode = "LK"
	CountryCodeSD CountryCode = "SD"
	CountryCodeSR CountryCode = "SR"
	CountryCodeSJ CountryCode = "SJ"
	CountryCodeSZ CountryCode = "SZ"
	CountryCodeSE CountryCode = "SE"
	CountryCodeCH CountryCode = "CH"
	CountryCodeSY CountryCode = "SY"
	CountryCodeTW CountryCode = "TW"
	CountryCodeTJ CountryCode = "TJ"
	CountryCodeTZ CountryCode = "TZ"
	CountryCodeTH CountryCode = "TH"
	CountryCodeTL CountryCode = "TL"
	CountryCodeTG CountryCode = "TG"
	CountryCodeTK CountryCode = "TK"
	CountryCodeTO CountryCode = "TO"
	CountryCodeTT CountryCode = "TT"
	CountryCodeTN CountryCode = "TN"
	CountryCodeTR CountryCode = "TR"
	CountryCodeTM CountryCode = "TM"
	CountryCodeTC CountryCode = "TC"
	CountryCodeTV CountryCode = "TV"
	CountryCodeUG CountryCode = "UG"
	CountryCodeUA CountryCode = "UA"
	CountryCodeAE CountryCode = "AE"
	CountryCodeGB CountryCode = "GB"
	CountryCodeUM CountryCode = "UM"
	CountryCodeUS CountryCode = "US"
	CountryCodeUY CountryCode = "UY"
	CountryCodeUZ CountryCode = "UZ"
	CountryCodeVU CountryCode = "VU"
	CountryCodeVE CountryCode = "VE"
	CountryCodeVN CountryCode = "VN"
	CountryCodeVG CountryCode = "VG"
	CountryCodeVI CountryCode = "VI"
	CountryCodeWF CountryCode = "WF"
	CountryCodeEH CountryCode = "EH"
	CountryCodeYE CountryCode = "YE"
	CountryCodeZM CountryCode = "ZM"
	CountryCodeZW CountryCode = "ZW"
)

func (CountryCode) KnownValues() []CountryCode {
	return []CountryCode{
		CountryCodeAF, CountryCodeAX, CountryCodeAL, CountryCodeDZ, CountryCodeAS, CountryCodeAD,
		CountryCodeAO, CountryCodeAI, CountryCodeAQ, CountryCodeAG, CountryCodeAR, CountryCodeAM,
		CountryCodeAW, CountryCodeAU, CountryCodeAT, CountryCodeAZ, CountryCodeBS, CountryCodeBH,
		CountryCodeBD, CountryCodeBB, CountryCodeBY, CountryCodeBE, CountryCodeBZ, CountryCodeBJ,
		CountryCodeBM, CountryCodeBT, CountryCodeBO, CountryCodeBQ, CountryCodeBA, CountryCodeBW,
		CountryCodeBV, CountryCodeBR, CountryCodeIO, CountryCodeBN, CountryCodeBG, CountryCodeBF,
		CountryCodeBI, CountryCodeKH, CountryCodeCM, CountryCodeCA, CountryCodeCV, CountryCodeKY,
		CountryCodeCF, CountryCodeTD, CountryCodeCL, CountryCodeCN, CountryCodeCX, CountryCodeCC,
		CountryCodeCO, CountryCodeKM, CountryCodeCG, CountryCodeCD, CountryCodeCK, CountryCodeCR,
		CountryCodeCI, CountryCodeHR, CountryCodeCU, CountryCodeCW, CountryCodeCY, CountryCodeCZ,
		CountryCodeDK, CountryCodeDJ, CountryCodeDM, CountryCodeDO, CountryCodeEC, CountryCodeEG,
		CountryCodeSV, CountryCodeGQ, CountryCodeER, CountryCodeEE, CountryCodeET, CountryCodeFK,
		CountryCodeFO, CountryCodeFJ, CountryCodeFI, CountryCodeFR, CountryCodeGF, CountryCodePF,
		CountryCodeTF, CountryCodeGA, CountryCodeGM, CountryCodeGE, CountryCodeDE, CountryCodeGH,
		CountryCodeGI, CountryCodeGR, CountryCodeGL, CountryCodeGD, CountryCodeGP, CountryCodeGU,
		CountryCodeGT, CountryCodeGG, CountryCodeGN, CountryCodeGW, CountryCodeGY, CountryCodeHT,
		CountryCodeHM, CountryCodeVA, CountryCodeHN, CountryCodeHK, CountryCodeHU, CountryCodeIS,
		CountryCodeIN, CountryCodeID, CountryCodeIR, CountryCodeIQ, CountryCodeIE, CountryCodeIM,
		CountryCodeIL, CountryCodeIT, CountryCodeJM, CountryCodeJP, CountryCodeJE, CountryCodeJO,
		CountryCodeKZ, CountryCodeKE, CountryCodeKI, CountryCodeKP, CountryCodeKR, CountryCodeKW,
		CountryCodeKG, CountryCodeLA, CountryCodeLV, CountryCodeLB, CountryCodeLS, CountryCodeLR,
		CountryCodeLY, CountryCodeLI, CountryCodeLT, CountryCodeLU, CountryCodeMO, CountryCodeMK,
		CountryCodeMG, CountryCodeMW, CountryCodeMY, CountryCodeMV, CountryCodeML, CountryCodeMT,
		CountryCodeMH, CountryCodeMQ, CountryCodeMR, CountryCodeMU, CountryCodeYT, CountryCodeMX,
		CountryCodeFM, CountryCodeMD, CountryCodeMC, CountryCodeMN, CountryCodeME, CountryCodeMS,
		CountryCodeMA, CountryCodeMZ, CountryCodeMM, CountryCodeNA, CountryCodeNR, CountryCodeNP,
		CountryCodeNL, CountryCodeNC, CountryCodeNZ, CountryCodeNI, CountryCodeNE, CountryCodeNG,
		CountryCodeNU, CountryCodeNF, CountryCodeMP, CountryCodeNO, CountryCodeOM, CountryCodePK,
		CountryCodePW, CountryCodePS, CountryCodePA, CountryCodePG, CountryCodePY, CountryCodePE,
		CountryCodePH, CountryCodePN, CountryCodePL, CountryCodePT, CountryCodePR, CountryCodeQA,
		CountryCodeRE, CountryCodeRO, CountryCodeRU, CountryCodeRW, CountryCodeBL, CountryCodeSH,
		CountryCodeKN, CountryCodeLC, CountryCodeMF, CountryCodePM, CountryCodeVC, CountryCodeWS,
		CountryCodeSM, CountryCodeST, CountryCodeSA, CountryCodeSN, CountryCodeRS, CountryCodeSC,
		CountryCodeSL, CountryCodeSG, CountryCodeSX, CountryCodeSK, CountryCodeSI, CountryCodeSB,
		CountryCodeSO, CountryCodeZA, CountryCodeGS, CountryCodeSS, CountryCodeES, CountryCodeLK,
		CountryCodeSD, CountryCodeSR, CountryCodeSJ, CountryCodeSZ, CountryCodeSE, CountryCodeCH,
		CountryCodeSY, CountryCodeTW, CountryCodeTJ, CountryCodeTZ, CountryCodeTH, CountryCodeTL,
		CountryCodeTG, CountryCodeTK, CountryCodeTO, CountryCodeTT, CountryCodeTN, CountryCodeTR,
		CountryCodeTM, CountryCodeTC, CountryCodeTV, CountryCodeUG, CountryCodeUA, CountryCodeAE,
		CountryCodeGB, CountryCodeUM, CountryCodeUS, CountryCodeUY, CountryCodeUZ, CountryCodeVU,
		CountryCodeVE, CountryCodeVN, CountryCodeVG, CountryCodeVI, CountryCodeWF, CountryCodeEH,
		CountryCodeYE, CountryCodeZM, CountryCodeZW,
	}
}

// Currency is an ISO 4217 currency code.
type Currency string

const (
	CurrencyAED Currency = "AED"
	CurrencyALL Currency = "ALL"
	CurrencyAMD Currency = "AMD"
	CurrencyANG Currency = "ANG"
	CurrencyAOA Currency = "AOA"
	CurrencyARS Currency = "ARS"
	CurrencyAUD Currency = "AUD"
	CurrencyAWG Currency = "AWG"
	CurrencyAZN Currency = "AZN"
	CurrencyBAM Currency = "BAM"
	CurrencyBBD Currency = "BBD"
	CurrencyBDT Currency = "BDT"
	CurrencyBGN Currency = "BGN"
	CurrencyBHD Currency = "BHD"
	CurrencyBIF Currency = "BIF"
	CurrencyBMD Currency = "BMD"
	CurrencyBND Currency = "BND"
	CurrencyBOB Currency = "BOB"
	CurrencyBRL Currency = "BRL"
	CurrencyBSD Currency = "BSD"
	CurrencyBWP Currency = "BWP"
	CurrencyBYN Currency = "BYN"
	CurrencyBZD Currency = "BZD"
	CurrencyCAD Currency = "CAD"
	CurrencyCHF Currency = "CHF"
	CurrencyCLP Currency = "CLP"
	CurrencyCNY Currency = "CNY"
	CurrencyCOP Currency = "COP"
	CurrencyCRC Currency = "CRC"
	CurrencyCUP Currency = "CUP"
	CurrencyCVE Currency = "CVE"
	CurrencyCZK Currency = "CZK"
	CurrencyDJF Currency = "DJF"
	CurrencyDKK Currency = "DKK"
	CurrencyDOP Currency = "DOP"
	CurrencyDZD Currency = "DZD"
	CurrencyEGP Currency = "EGP"
	CurrencyETB Currency = "ETB"
	CurrencyEUR Currency = "EUR"
	CurrencyFJD Currency = "FJD"
	CurrencyFKP Currency = "FKP"
	CurrencyGBP Currency = "GBP"
	CurrencyGEL Currency = "GEL"
	CurrencyGHS Currency = "GHS"
	CurrencyGIP Currency = "GIP"
	CurrencyGMD Currency = "GMD"
	CurrencyGNF Currency = "GNF"
	CurrencyGTQ Currency = "GTQ"
	CurrencyGYD Currency = "GYD"
	CurrencyHKD Currency = "HKD"
	CurrencyHNL Currency = "HNL"
	CurrencyHRK Currency = "HRK"
	CurrencyHTG Currency = "HTG"
	CurrencyHUF Currency = "HUF"
	CurrencyIDR Currency = "IDR"
	CurrencyILS Currency = "ILS"
	CurrencyINR Currency = "INR"
	CurrencyIQD Currency = "IQD"
	CurrencyJMD Currency = "JMD"
	CurrencyJOD Currency = "JOD"
	CurrencyJPY Currency = "JPY"
	CurrencyKES Currency = "KES"
	CurrencyKGS Currency = "KGS"
	CurrencyKHR Currency = "KHR"
	CurrencyKMF Currency = "KMF"
	CurrencyKRW Currency = "KRW"
	CurrencyKWD Currency = "KWD"
	CurrencyKYD Currency = "KYD"
	CurrencyKZT Currency = "KZT"
	CurrencyLAK Currency = "LAK"
	CurrencyLBP Currency = "LBP"
	CurrencyLKR Currency = "LKR"
	CurrencyLRD Currency = "LRD"
	CurrencyLSL Currency = "LSL"
	CurrencyLYD Currency = "LYD"
	CurrencyMAD Currency = "MAD"
	CurrencyMDL Currency = "MDL"
	CurrencyMGA Currency = "MGA"
	CurrencyMKD Currency = "MKD"
	CurrencyMMK Currency = "MMK"
	CurrencyMNT Currency = "MNT"
	CurrencyMOP Currency = "MOP"
	CurrencyMRU Currency = "MRU"
	CurrencyMUR Currency = "MUR"
	CurrencyMVR Currency = "MVR"
	CurrencyMWK Currency = "MWK"
	CurrencyMXN Currency = "MXN"
	CurrencyMYR Currency = "MYR"
	CurrencyMZN Currency = "MZN"
	CurrencyNAD Currency = "NAD"
	CurrencyNGN Currency = "NGN"
	CurrencyNIO Currency = "NIO"
	CurrencyNOK Currency = "NOK"
	CurrencyNPR Currency = "NPR"
	CurrencyNZD Currency = "NZD"
	CurrencyOMR Currency = "OMR"
	CurrencyPAB Currency = "PAB"
	CurrencyPEN Currency = "PEN"
	CurrencyPGK Currency = "PGK"
	CurrencyPHP Currency = "PHP"
	CurrencyPKR Currency = "PKR"
	CurrencyPLN Currency = "PLN"
	CurrencyPYG Currency = "PYG"
	CurrencyQAR Currency = "QAR"
	CurrencyRON Currency = "RON"
	CurrencyRSD Currency = "RSD"
	CurrencyRUB Currency = "RUB"
	CurrencyRWF Currency = "RWF"
	CurrencySAR Currency = "SAR"
	CurrencySBD Currency = "SBD"
	CurrencySCR Currency = "SCR"
	CurrencySEK Currency = "SEK"
	CurrencySGD Currency = "SGD"
	CurrencySHP Currency = "SHP"
	CurrencySLE Currency = "SLE"
	CurrencySLL Currency = "SLL"
	CurrencySOS Currency = "SOS"
	CurrencySRD Currency = "SRD"
	CurrencySSP Currency = "SSP"
	CurrencySTN Currency = "STN"
	CurrencySVC Currency = "SVC"
	CurrencySZL Currency = "SZL"
	CurrencyTHB Currency = "THB"
	CurrencyTND Currency = "TND"
	CurrencyTOP Currency = "TOP"
	CurrencyTRY Currency = "TRY"
	CurrencyTTD Currency = "TTD"
	CurrencyTWD Currency = "TWD"
	CurrencyTZS Currency = "TZS"
	CurrencyUAH Currency = "UAH"
	CurrencyUGX Currency = "UGX"
	CurrencyUSD Currency = "USD"
	CurrencyUYU Currency = "UYU"
	CurrencyUZS Currency = "UZS"
	CurrencyVES Currency = "VES"
	CurrencyVND Currency = "VND"
	CurrencyVUV Currency = "VUV"
	CurrencyWST Currency = "WST"
	CurrencyXAF Currency = "XAF"
	CurrencyXCD Currency = "XCD"
	CurrencyXOF Currency = "XOF"
	CurrencyXPF Currency = "XPF"
	CurrencyYER Currency = "YER"
	CurrencyZAR Currency = "ZAR"
	CurrencyZMW Currency = "ZMW"
)

func (Currency) KnownValues() []Currency {
	return []Currency{
		CurrencyAED, CurrencyALL, CurrencyAMD, CurrencyANG, CurrencyAOA, CurrencyARS, CurrencyAUD,
		CurrencyAWG, CurrencyAZN, CurrencyBAM, CurrencyBBD, CurrencyBDT, CurrencyBGN, CurrencyBHD,
		CurrencyBIF, CurrencyBMD, CurrencyBND, CurrencyBOB, CurrencyBRL, CurrencyBSD, CurrencyBWP,
		CurrencyBYN, CurrencyBZD, CurrencyCAD, CurrencyCHF, CurrencyCLP, CurrencyCNY, CurrencyCOP,
		CurrencyCRC, CurrencyCUP, CurrencyCVE, CurrencyCZK, CurrencyDJF, CurrencyDKK, CurrencyDOP,
		CurrencyDZD, CurrencyEGP, CurrencyETB, CurrencyEUR, CurrencyFJD, CurrencyFKP, CurrencyGBP,
		CurrencyGEL, CurrencyGHS, CurrencyGIP, CurrencyGMD, CurrencyGNF, CurrencyGTQ, CurrencyGYD,
		CurrencyHKD, CurrencyHNL, CurrencyHRK, CurrencyHTG, CurrencyHUF, CurrencyIDR, CurrencyILS,
		CurrencyINR, CurrencyIQD, CurrencyJMD, CurrencyJOD, CurrencyJPY, CurrencyKES, CurrencyKGS,
		CurrencyKHR, CurrencyKMF, CurrencyKRW, CurrencyKWD, CurrencyKYD, CurrencyKZT, CurrencyLAK,
		CurrencyLBP, CurrencyLKR, CurrencyLRD, CurrencyLSL, CurrencyLYD, CurrencyMAD, CurrencyMDL,
		CurrencyMGA, CurrencyMKD, CurrencyMMK, CurrencyMNT, CurrencyMOP, CurrencyMRU, CurrencyMUR,
		CurrencyMVR, CurrencyMWK, CurrencyMXN, CurrencyMYR, CurrencyMZN, CurrencyNAD, CurrencyNGN,
		CurrencyNIO, CurrencyNOK, CurrencyNPR, CurrencyNZD, CurrencyOMR, CurrencyPAB, CurrencyPEN,
		CurrencyPGK, CurrencyPHP, CurrencyPKR, CurrencyPLN, CurrencyPYG, CurrencyQAR, CurrencyRON,
		CurrencyRSD, CurrencyRUB, CurrencyRWF, CurrencySAR, CurrencySBD, CurrencySCR, CurrencySEK,
		CurrencySGD, CurrencySHP, CurrencySLE, CurrencySLL, CurrencySOS, CurrencySRD, CurrencySSP,
		CurrencySTN, CurrencySVC, CurrencySZL, CurrencyTHB, CurrencyTND, CurrencyTOP, CurrencyTRY,
		CurrencyTTD, CurrencyTWD, CurrencyTZS, CurrencyUAH, CurrencyUGX, CurrencyUSD, CurrencyUYU,
		CurrencyUZS, CurrencyVES, CurrencyVND, CurrencyVUV, CurrencyWST, CurrencyXAF, CurrencyXCD,
		CurrencyXOF, CurrencyXPF, CurrencyYER, CurrencyZAR, CurrencyZMW,
	}
}
