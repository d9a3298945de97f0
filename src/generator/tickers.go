package generator

// seriesRange is a company prefix with its listed preferred series letters.
type seriesRange struct {
	Prefix string
	First  byte
	Last   byte
}

type companyInfo struct {
	Name   string
	Sector string
}

// Listed preferred series. AXP appears twice and is emitted once.
var tickerTable = []seriesRange{
	{"BAC", 'B', 'U'},
	{"JPM", 'A', 'T'},
	{"WFC", 'A', 'T'},
	{"GS", 'A', 'T'},
	{"MS", 'A', 'T'},
	{"C", 'A', 'T'},
	{"BRK", 'A', 'J'},
	{"BER", 'A', 'J'},
	{"AXP", 'A', 'J'},
	{"MET", 'A', 'J'},
	{"PRU", 'A', 'J'},
	{"AIG", 'A', 'J'},
	{"USB", 'A', 'J'},
	{"PNC", 'A', 'J'},
	{"TFC", 'A', 'J'},
	{"COF", 'A', 'J'},
	{"BK", 'A', 'J'},
	{"STT", 'A', 'J'},
	{"BLK", 'A', 'J'},
	{"KMI", 'A', 'J'},
	{"EPD", 'A', 'J'},
	{"ENB", 'A', 'J'},
	{"AAPL", 'A', 'J'},
	{"MSFT", 'A', 'J'},
	{"GOOGL", 'A', 'J'},
	{"AMZN", 'A', 'J'},
	{"META", 'A', 'J'},
	{"NFLX", 'A', 'J'},
	{"TSLA", 'A', 'J'},
	{"NVDA", 'A', 'J'},
	{"CRM", 'A', 'J'},
	{"ORCL", 'A', 'J'},
	{"JNJ", 'A', 'J'},
	{"PFE", 'A', 'J'},
	{"UNH", 'A', 'J'},
	{"ABBV", 'A', 'J'},
	{"MRK", 'A', 'J'},
	{"XOM", 'A', 'J'},
	{"CVX", 'A', 'J'},
	{"NEE", 'A', 'J'},
	{"DUK", 'A', 'J'},
	{"SO", 'A', 'J'},
	{"PG", 'A', 'J'},
	{"KO", 'A', 'J'},
	{"PEP", 'A', 'J'},
	{"WMT", 'A', 'J'},
	{"HD", 'A', 'J'},
	{"SPG", 'A', 'J'},
	{"PLD", 'A', 'J'},
	{"CCI", 'A', 'J'},
	{"AMT", 'A', 'J'},
	{"EQIX", 'A', 'J'},
	{"T", 'A', 'J'},
	{"VZ", 'A', 'J'},
	{"TMUS", 'A', 'J'},
	{"GE", 'A', 'J'},
	{"CAT", 'A', 'J'},
	{"BA", 'A', 'J'},
	{"MMM", 'A', 'J'},
	{"HON", 'A', 'J'},
	{"COST", 'A', 'J'},
	{"TGT", 'A', 'J'},
	{"LOW", 'A', 'J'},
	{"SBUX", 'A', 'J'},
	{"NKE", 'A', 'J'},
	{"F", 'A', 'J'},
	{"GM", 'A', 'J'},
	{"DAL", 'A', 'J'},
	{"UAL", 'A', 'J'},
	{"AAL", 'A', 'J'},
	{"DIS", 'A', 'J'},
	{"CMCSA", 'A', 'J'},
	{"WBD", 'A', 'J'},
	{"PARA", 'A', 'J'},
	{"INTC", 'A', 'J'},
	{"AMD", 'A', 'J'},
	{"QCOM", 'A', 'J'},
	{"AVGO", 'A', 'J'},
	{"TXN", 'A', 'J'},
	{"SCHW", 'A', 'J'},
	{"AXP", 'A', 'J'},
	{"SPGI", 'A', 'J'},
	{"ICE", 'A', 'J'},
	{"CME", 'A', 'J'},
}

const (
	sectorFinancial     = "Financial Services"
	sectorInsurance     = "Insurance"
	sectorEnergy        = "Energy"
	sectorTechnology    = "Technology"
	sectorHealthcare    = "Healthcare"
	sectorUtilities     = "Utilities"
	sectorConsumer      = "Consumer Goods"
	sectorRealEstate    = "Real Estate"
	sectorTelecom       = "Telecommunications"
	sectorIndustrial    = "Industrial"
	sectorAutomotive    = "Automotive"
	sectorTransport     = "Transportation"
	sectorEntertainment = "Entertainment"
)

var companies = map[string]companyInfo{
	"BAC":   {"Bank of America", sectorFinancial},
	"JPM":   {"JPMorgan Chase", sectorFinancial},
	"WFC":   {"Wells Fargo", sectorFinancial},
	"GS":    {"Goldman Sachs", sectorFinancial},
	"MS":    {"Morgan Stanley", sectorFinancial},
	"C":     {"Citigroup", sectorFinancial},
	"BRK":   {"Berkshire Hathaway", sectorFinancial},
	"BER":   {"Berkshire Hathaway", sectorFinancial},
	"AXP":   {"American Express", sectorFinancial},
	"MET":   {"MetLife", sectorInsurance},
	"PRU":   {"Prudential", sectorInsurance},
	"AIG":   {"American International Group", sectorInsurance},
	"USB":   {"U.S. Bancorp", sectorFinancial},
	"PNC":   {"PNC Financial Services", sectorFinancial},
	"TFC":   {"Truist Financial", sectorFinancial},
	"COF":   {"Capital One Financial", sectorFinancial},
	"BK":    {"Bank of New York Mellon", sectorFinancial},
	"STT":   {"State Street", sectorFinancial},
	"BLK":   {"BlackRock", sectorFinancial},
	"KMI":   {"Kinder Morgan", sectorEnergy},
	"EPD":   {"Enterprise Products Partners", sectorEnergy},
	"ENB":   {"Enbridge", sectorEnergy},
	"AAPL":  {"Apple", sectorTechnology},
	"MSFT":  {"Microsoft", sectorTechnology},
	"GOOGL": {"Alphabet", sectorTechnology},
	"AMZN":  {"Amazon", sectorTechnology},
	"META":  {"Meta Platforms", sectorTechnology},
	"NFLX":  {"Netflix", sectorTechnology},
	"TSLA":  {"Tesla", sectorTechnology},
	"NVDA":  {"NVIDIA", sectorTechnology},
	"CRM":   {"Salesforce", sectorTechnology},
	"ORCL":  {"Oracle", sectorTechnology},
	"JNJ":   {"Johnson & Johnson", sectorHealthcare},
	"PFE":   {"Pfizer", sectorHealthcare},
	"UNH":   {"UnitedHealth Group", sectorHealthcare},
	"ABBV":  {"AbbVie", sectorHealthcare},
	"MRK":   {"Merck", sectorHealthcare},
	"XOM":   {"Exxon Mobil", sectorEnergy},
	"CVX":   {"Chevron", sectorEnergy},
	"NEE":   {"NextEra Energy", sectorUtilities},
	"DUK":   {"Duke Energy", sectorUtilities},
	"SO":    {"Southern Company", sectorUtilities},
	"PG":    {"Procter & Gamble", sectorConsumer},
	"KO":    {"Coca-Cola", sectorConsumer},
	"PEP":   {"PepsiCo", sectorConsumer},
	"WMT":   {"Walmart", sectorConsumer},
	"HD":    {"Home Depot", sectorConsumer},
	"SPG":   {"Simon Property Group", sectorRealEstate},
	"PLD":   {"Prologis", sectorRealEstate},
	"CCI":   {"Crown Castle", sectorRealEstate},
	"AMT":   {"American Tower", sectorRealEstate},
	"EQIX":  {"Equinix", sectorRealEstate},
	"T":     {"AT&T", sectorTelecom},
	"VZ":    {"Verizon", sectorTelecom},
	"TMUS":  {"T-Mobile", sectorTelecom},
	"GE":    {"General Electric", sectorIndustrial},
	"CAT":   {"Caterpillar", sectorIndustrial},
	"BA":    {"Boeing", sectorIndustrial},
	"MMM":   {"3M", sectorIndustrial},
	"HON":   {"Honeywell", sectorIndustrial},
	"COST":  {"Costco", sectorConsumer},
	"TGT":   {"Target", sectorConsumer},
	"LOW":   {"Lowe's", sectorConsumer},
	"SBUX":  {"Starbucks", sectorConsumer},
	"NKE":   {"Nike", sectorConsumer},
	"F":     {"Ford", sectorAutomotive},
	"GM":    {"General Motors", sectorAutomotive},
	"DAL":   {"Delta Air Lines", sectorTransport},
	"UAL":   {"United Airlines", sectorTransport},
	"AAL":   {"American Airlines", sectorTransport},
	"DIS":   {"Disney", sectorEntertainment},
	"CMCSA": {"Comcast", sectorEntertainment},
	"WBD":   {"Warner Bros. Discovery", sectorEntertainment},
	"PARA":  {"Paramount Global", sectorEntertainment},
	"INTC":  {"Intel", sectorTechnology},
	"AMD":   {"Advanced Micro Devices", sectorTechnology},
	"QCOM":  {"Qualcomm", sectorTechnology},
	"AVGO":  {"Broadcom", sectorTechnology},
	"TXN":   {"Texas Instruments", sectorTechnology},
	"SCHW":  {"Charles Schwab", sectorFinancial},
	"SPGI":  {"S&P Global", sectorFinancial},
	"ICE":   {"Intercontinental Exchange", sectorFinancial},
	"CME":   {"CME Group", sectorFinancial},
}
