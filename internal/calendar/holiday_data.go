package calendar

// holidayNames is indexed by the name digit of a packed record
var holidayNames = [...]string{
	"元旦",
	"春节",
	"清明节",
	"劳动节",
	"端午节",
	"中秋节",
	"国庆节",
}

// packedHolidays lists the rest days and adjusted workdays published by the
// State Council, one 19 character record per day:
//
//	YYYYMMDD  day described
//	W         '0' adjusted workday, any other digit rest day
//	N         index into holidayNames
//	YYYYMMDD  the statutory holiday the day belongs to
//	;         record terminator
//
// New years are added here; records must stay sorted by date.
const packedHolidays = "" +
	// 2020
	"202001011020200101;202001190120200125;202001241120200125;" +
	"202001251120200125;202001261120200125;202001271120200125;" +
	"202001281120200125;202001291120200125;202001301120200125;" +
	"202001311120200125;202002011120200125;202002021120200125;" +
	"202004041220200404;202004051220200404;202004061220200404;" +
	"202004260320200501;202005011320200501;202005021320200501;" +
	"202005031320200501;202005041320200501;202005051320200501;" +
	"202005090320200501;202006251420200625;202006261420200625;" +
	"202006271420200625;202006280420200625;202009270620201001;" +
	"202010011620201001;202010021620201001;202010031620201001;" +
	"202010041620201001;202010051620201001;202010061620201001;" +
	"202010071620201001;202010081620201001;202010100620201001;" +
	// 2021
	"202101011020210101;202101021020210101;202101031020210101;" +
	"202102070120210212;202102111120210212;202102121120210212;" +
	"202102131120210212;202102141120210212;202102151120210212;" +
	"202102161120210212;202102171120210212;202102200120210212;" +
	"202104031220210404;202104041220210404;202104051220210404;" +
	"202104250320210501;202105011320210501;202105021320210501;" +
	"202105031320210501;202105041320210501;202105051320210501;" +
	"202105080320210501;202106121420210614;202106131420210614;" +
	"202106141420210614;202109180520210921;202109191520210921;" +
	"202109201520210921;202109211520210921;202109260620211001;" +
	"202110011620211001;202110021620211001;202110031620211001;" +
	"202110041620211001;202110051620211001;202110061620211001;" +
	"202110071620211001;202110090620211001;" +
	// 2022
	"202201011020220101;202201021020220101;202201031020220101;" +
	"202201290120220201;202201300120220201;202201311120220201;" +
	"202202011120220201;202202021120220201;202202031120220201;" +
	"202202041120220201;202202051120220201;202202061120220201;" +
	"202204020220220405;202204031220220405;202204041220220405;" +
	"202204051220220405;202204240320220501;202204301320220501;" +
	"202205011320220501;202205021320220501;202205031320220501;" +
	"202205041320220501;202205070320220501;202206031420220603;" +
	"202206041420220603;202206051420220603;202209101520220910;" +
	"202209111520220910;202209121520220910;202210011620221001;" +
	"202210021620221001;202210031620221001;202210041620221001;" +
	"202210051620221001;202210061620221001;202210071620221001;" +
	"202210080620221001;202210090620221001;202212311020230101;" +
	// 2023
	"202301011020230101;202301021020230101;202301211120230122;" +
	"202301221120230122;202301231120230122;202301241120230122;" +
	"202301251120230122;202301261120230122;202301271120230122;" +
	"202301280120230122;202301290120230122;202304051220230405;" +
	"202304230320230501;202304291320230501;202304301320230501;" +
	"202305011320230501;202305021320230501;202305031320230501;" +
	"202305060320230501;202306221420230622;202306231420230622;" +
	"202306241420230622;202306250420230622;202309291520230929;" +
	"202309301620231001;202310011620231001;202310021620231001;" +
	"202310031620231001;202310041620231001;202310051620231001;" +
	"202310061620231001;202310070620231001;202310080620231001;" +
	// 2024
	"202401011020240101;202402040120240210;202402101120240210;" +
	"202402111120240210;202402121120240210;202402131120240210;" +
	"202402141120240210;202402151120240210;202402161120240210;" +
	"202402171120240210;202402180120240210;202404041220240404;" +
	"202404051220240404;202404061220240404;202404070220240404;" +
	"202404280320240501;202405011320240501;202405021320240501;" +
	"202405031320240501;202405041320240501;202405051320240501;" +
	"202405110320240501;202406081420240610;202406091420240610;" +
	"202406101420240610;202409140520240917;202409151520240917;" +
	"202409161520240917;202409171520240917;202409290620241001;" +
	"202410011620241001;202410021620241001;202410031620241001;" +
	"202410041620241001;202410051620241001;202410061620241001;" +
	"202410071620241001;202410120620241001;" +
	// 2025
	"202501011020250101;202501260120250129;202501281120250129;" +
	"202501291120250129;202501301120250129;202501311120250129;" +
	"202502011120250129;202502021120250129;202502031120250129;" +
	"202502041120250129;202502080120250129;202504041220250404;" +
	"202504051220250404;202504061220250404;202504270320250501;" +
	"202505011320250501;202505021320250501;202505031320250501;" +
	"202505041320250501;202505051320250501;202505311420250531;" +
	"202506011420250531;202506021420250531;202509280620251001;" +
	"202510011620251001;202510021620251001;202510031620251001;" +
	"202510041620251001;202510051620251001;202510061520251006;" +
	"202510071620251001;202510081620251001;202510110620251001;"
