package seed

import "github.com/vertiport/evtolhub/pkg/models"

// Sample catalog data. Company and job text is kept in its original language.

var companySeed = []models.Company{
	// domestic
	{Name: "亿航智能", Country: "中国", Description: "全球领先的自动驾驶飞行器制造商，主打EH216系列自动驾驶航空器", CertificationStatus: "已获得中国民航局型号合格证"},
	{Name: "小鹏汇天", Country: "中国", Description: "专注于低空载人飞行器研发，推出X2系列飞行汽车", CertificationStatus: "正在申请适航认证"},
	{Name: "极飞科技", Country: "中国", Description: "农业无人机龙头企业，正在开发载人eVTOL项目", CertificationStatus: "研发阶段"},
	{Name: "华夏天信", Country: "中国", Description: "专注于开发新一代电动垂直起降飞行器", CertificationStatus: "原型机测试阶段"},
	{Name: "德事隆航空", Country: "中国", Description: "致力于研发新型电动垂直起降飞行器，主打城市空中交通", CertificationStatus: "概念验证阶段"},
	{Name: "航天科工", Country: "中国", Description: "国家级航空航天企业，正在开发多款eVTOL产品", CertificationStatus: "研发测试阶段"},
	{Name: "锐翔航空", Country: "中国", Description: "专注于电动垂直起降技术研发，已有多个原型机", CertificationStatus: "飞行测试阶段"},
	{Name: "零度智控", Country: "中国", Description: "从无人机起步，正在开发载人级eVTOL产品", CertificationStatus: "原型机开发阶段"},
	{Name: "大疆创新", Country: "中国", Description: "全球领先的无人机制造商，正在布局载人eVTOL领域", CertificationStatus: "研发阶段"},
	{Name: "中航工业", Country: "中国", Description: "国家级航空工业集团，开发多款新型电动空器", CertificationStatus: "多个项目并行推进中"},
	// international
	{Name: "Joby Aviation", Country: "美国", Description: "领先的eVTOL开发商，已获得重要适航认证里程碑", CertificationStatus: "FAA认证最后阶段"},
	{Name: "Lilium", Country: "德国", Description: "开发创新的喷气式eVTOL，采用独特的矢量推进系统", CertificationStatus: "EASA认证进行中"},
	{Name: "Volocopter", Country: "德国", Description: "专注于城市空中交通，开发VoloCity空中出租车", CertificationStatus: "EASA认证进行中"},
	{Name: "Archer Aviation", Country: "美国", Description: "开发Maker电动空中出租车，获得联合航空投资", CertificationStatus: "FAA认证进行中"},
	{Name: "Beta Technologies", Country: "美国", Description: "开发ALIA电动飞机，主打货运和客市场", CertificationStatus: "FAA认证测试阶段"},
	{Name: "Vertical Aerospace", Country: "英国", Description: "开发VX4 eVTOL，已获得大量预订单", CertificationStatus: "CAA/EASA认证进行中"},
	{Name: "Eve Air Mobility", Country: "巴西", Description: "巴西航空工业子公司，开发新一代eVTOL", CertificationStatus: "ANAC认证进行中"},
	{Name: "Wisk Aero", Country: "美国", Description: "波音支持的自动驾驶eVTOL开发商", CertificationStatus: "FAA认证早期阶段"},
	{Name: "SkyDrive", Country: "日本", Description: "开发SD-03型飞行汽车，计划2025年商用", CertificationStatus: "JCAB认证进行中"},
	{Name: "Overair", Country: "美国", Description: "开发Butterfly eVTOL采用独特的推进系统", CertificationStatus: "FAA认证早期段"},
}

var jobSeed = []models.Job{
	{
		Title:        "EVTOL飞行器测试工程师",
		Company:      "亿航智能",
		Location:     "广州",
		Description:  "负责EH216系列EVTOL飞行器的飞行测试和性能评估，确保飞行安全性和可靠性。",
		Requirements: "1. 航空工程相关专业本科及以上学历\n2. 3年以上飞行器测试经验\n3. 熟悉适航条例和测试规范\n4. 具有试飞经验者优先",
		SalaryRange:  "25k-35k",
		ContactEmail: "hr@ehang.com",
	},
	{
		Title:        "电机系统工程师",
		Company:      "小鹏汇天",
		Location:     "深圳",
		Description:  "负责X2系列飞行器电机系统开发和优化，提升动力系统效率。",
		Requirements: "1. 电气工程专业硕士及以上学历\n2. 精通电机控制系统设计\n3. 具有新能源汽车电机开发经验优先",
		SalaryRange:  "30k-45k",
		ContactEmail: "careers@xiaopeng.com",
	},
	{
		Title:        "飞控软件工程师",
		Company:      "大疆创新",
		Location:     "深圳",
		Description:  "开发EVTOL飞行控制系统，实现自动驾驶功能。",
		Requirements: "1. 计算机或航空专业硕士\n2. 精通C++编程\n3. 具有飞控算法开发经验",
		SalaryRange:  "35k-50k",
		ContactEmail: "jobs@dji.com",
	},
	{
		Title:        "结构设计工程师",
		Company:      "Joby Aviation",
		Location:     "上海",
		Description:  "负责EVTOL机体结构设计和优化，确保结构强度和轻量化。",
		Requirements: "1. 机械工程专业\n2. 熟练使用CATIA等设计软件\n3. 具有复合材料设计经验",
		SalaryRange:  "40k-60k",
		ContactEmail: "china@jobyaviation.com",
	},
	{
		Title:        "系统集成工程师",
		Company:      "Lilium",
		Location:     "北京",
		Description:  "负责EVTOL各系统集成和测试，确保系统兼容性。",
		Requirements: "1. 航空工程相关专业\n2. 具有系统集成经验\n3. 熟悉航空系统架构",
		SalaryRange:  "35k-50k",
		ContactEmail: "beijing@lilium.com",
	},
	{
		Title:        "适航认证专员",
		Company:      "中航工业",
		Location:     "西安",
		Description:  "负责EVTOL适航认证相关工作，与民航局对接。",
		Requirements: "1. 航空法规相关专业\n2. 熟悉适航条例\n3. 具有认证项目经验",
		SalaryRange:  "25k-40k",
		ContactEmail: "cert@avic.com",
	},
	{
		Title:        "动力系统工程师",
		Company:      "Beta Technologies",
		Location:     "苏州",
		Description:  "负责EVTOL动力系统开发和测试。",
		Requirements: "1. 动力工程专业\n2. 熟悉电动推进系统\n3. 具有新能源动力系统开发经验",
		SalaryRange:  "30k-45k",
		ContactEmail: "suzhou@beta.com",
	},
	{
		Title:        "空气动力工程师",
		Company:      "Vertical Aerospace",
		Location:     "成都",
		Description:  "负责EVTOL气动设计和优化，提升飞行性能。",
		Requirements: "1. 航空工程专业\n2. 精通CFD分析\n3. 具有气动设计经验",
		SalaryRange:  "28k-43k",
		ContactEmail: "aero@vertical-aerospace.com",
	},
	{
		Title:        "航电系统工程师",
		Company:      "航天科工",
		Location:     "天津",
		Description:  "负责EVTOL航电系统开发和集成。",
		Requirements: "1. 航空电子专业\n2. 熟悉航电系统架构\n3. 具有DO-254认证经验",
		SalaryRange:  "25k-38k",
		ContactEmail: "avionics@casic.com",
	},
	{
		Title:        "电池系统工程师",
		Company:      "Eve Air Mobility",
		Location:     "武汉",
		Description:  "负责EVTOL动力电池系统开发和管理。",
		Requirements: "1. 电化学相关专业\n2. 熟悉电池管理系统\n3. 具有动力电池开发经验",
		SalaryRange:  "28k-42k",
		ContactEmail: "battery@eveairmobility.com",
	},
}

// productSeedEntry names the company instead of hard-coding its row id.
type productSeedEntry struct {
	CompanyName       string
	ModelName         string
	MaxRange          float64
	MaxSpeed          float64
	PassengerCapacity int
}

var productSeed = []productSeedEntry{
	{CompanyName: "亿航智能", ModelName: "EH216-S", MaxRange: 35, MaxSpeed: 130, PassengerCapacity: 2},
	{CompanyName: "亿航智能", ModelName: "EH216-F", MaxRange: 40, MaxSpeed: 130, PassengerCapacity: 0}, // cargo variant
	{CompanyName: "小鹏汇天", ModelName: "X2", MaxRange: 35, MaxSpeed: 130, PassengerCapacity: 2},
	{CompanyName: "小鹏汇天", ModelName: "X3", MaxRange: 45, MaxSpeed: 150, PassengerCapacity: 4},
	{CompanyName: "Joby Aviation", ModelName: "S4", MaxRange: 240, MaxSpeed: 320, PassengerCapacity: 4},
	{CompanyName: "Lilium", ModelName: "Lilium Jet", MaxRange: 250, MaxSpeed: 280, PassengerCapacity: 6},
	{CompanyName: "Volocopter", ModelName: "VoloCity", MaxRange: 35, MaxSpeed: 110, PassengerCapacity: 2},
	{CompanyName: "Archer Aviation", ModelName: "Maker", MaxRange: 100, MaxSpeed: 240, PassengerCapacity: 4},
	{CompanyName: "Beta Technologies", ModelName: "ALIA-250", MaxRange: 250, MaxSpeed: 270, PassengerCapacity: 6},
	{CompanyName: "Vertical Aerospace", ModelName: "VX4", MaxRange: 160, MaxSpeed: 320, PassengerCapacity: 4},
	{CompanyName: "Eve Air Mobility", ModelName: "eVTOL v1", MaxRange: 100, MaxSpeed: 240, PassengerCapacity: 4},
	{CompanyName: "Wisk Aero", ModelName: "Generation 6", MaxRange: 140, MaxSpeed: 230, PassengerCapacity: 4},
	{CompanyName: "SkyDrive", ModelName: "SD-03", MaxRange: 30, MaxSpeed: 100, PassengerCapacity: 1},
	{CompanyName: "Overair", ModelName: "Butterfly", MaxRange: 160, MaxSpeed: 280, PassengerCapacity: 5},
	{CompanyName: "极飞科技", ModelName: "V40", MaxRange: 50, MaxSpeed: 150, PassengerCapacity: 2},
	{CompanyName: "华夏天信", ModelName: "HX-1", MaxRange: 60, MaxSpeed: 180, PassengerCapacity: 3},
	{CompanyName: "德事隆航空", ModelName: "DX-20", MaxRange: 80, MaxSpeed: 200, PassengerCapacity: 4},
	{CompanyName: "航天科工", ModelName: "天行者", MaxRange: 100, MaxSpeed: 220, PassengerCapacity: 4},
	{CompanyName: "锐翔航空", ModelName: "RX-100", MaxRange: 70, MaxSpeed: 190, PassengerCapacity: 3},
	{CompanyName: "零度智控", ModelName: "Z-1", MaxRange: 40, MaxSpeed: 140, PassengerCapacity: 2},
}
