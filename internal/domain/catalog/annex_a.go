package catalog

// AnnexACategories are the four control themes of ISO 27001:2022 Annex A.
var AnnexACategories = []Category{
	{ID: "A.5", Kind: KindAnnexA, Name: "Organizational Controls", NameKo: "조직적 통제"},
	{ID: "A.6", Kind: KindAnnexA, Name: "People Controls", NameKo: "인적 통제"},
	{ID: "A.7", Kind: KindAnnexA, Name: "Physical Controls", NameKo: "물리적 통제"},
	{ID: "A.8", Kind: KindAnnexA, Name: "Technological Controls", NameKo: "기술적 통제"},
}

// AnnexAControls is the static Annex-A control catalog (93 controls).
var AnnexAControls = []Item{
	// A.5 Organizational controls
	{
		ID:            "A.5.1",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Policies for information security",
		TitleKo:       "정보보호 정책",
		Description:   "Information security policy and topic-specific policies shall be defined, approved by management, published and reviewed at planned intervals.",
		DescriptionKo: "정보보호 정책과 주제별 세부 정책을 정의하고 경영진 승인 후 공표해야 합니다.",
		Tip:           "1. 최상위 정보보호 정책서 1부를 작성합니다.\n   - 목표, 적용 범위, 경영진 의지 표명 포함\n2. 주제별 지침(접근통제, 암호화, 백업 등)은 별도 문서로 분리합니다.\n3. 연 1회 검토 이력을 문서 개정 이력표에 남깁니다.",
		Evidence:      "경영진 승인 정보보호 정책서, 문서 개정 이력",
	},
	{
		ID:            "A.5.2",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Information security roles and responsibilities",
		TitleKo:       "정보보호 역할 및 책임",
		Description:   "Information security roles and responsibilities shall be defined and allocated according to the organization needs.",
		DescriptionKo: "정보보호 역할과 책임을 정의하고 조직 필요에 따라 할당해야 합니다.",
		Evidence:      "보안 R&R 문서, 조직도",
	},
	{
		ID:            "A.5.3",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Segregation of duties",
		TitleKo:       "직무 분리",
		Description:   "Conflicting duties and conflicting areas of responsibility shall be segregated.",
		DescriptionKo: "상충되는 직무와 책임 영역은 분리해야 합니다.",
	},
	{
		ID:            "A.5.4",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Management responsibilities",
		TitleKo:       "경영진 책임",
		Description:   "Management shall require all personnel to apply information security in accordance with the established policies and procedures.",
		DescriptionKo: "경영진은 전 직원이 수립된 정책과 절차에 따라 정보보호를 적용하도록 요구해야 합니다.",
	},
	{
		ID:            "A.5.5",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Contact with authorities",
		TitleKo:       "관계 당국과의 연락",
		Description:   "The organization shall establish and maintain contact with relevant authorities.",
		DescriptionKo: "KISA, 개인정보보호위원회 등 관계 당국과의 연락 체계를 유지해야 합니다.",
	},
	{
		ID:            "A.5.6",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Contact with special interest groups",
		TitleKo:       "전문 단체와의 연락",
		Description:   "The organization shall establish and maintain contact with special interest groups or other specialist security forums.",
		DescriptionKo: "보안 전문 포럼이나 협회와의 연락 채널을 유지해야 합니다.",
	},
	{
		ID:            "A.5.7",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Threat intelligence",
		TitleKo:       "위협 인텔리전스",
		Description:   "Information relating to information security threats shall be collected and analysed to produce threat intelligence.",
		DescriptionKo: "보안 위협 정보를 수집하고 분석하여 위협 인텔리전스를 생산해야 합니다.",
	},
	{
		ID:            "A.5.8",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Information security in project management",
		TitleKo:       "프로젝트 관리에서의 정보보호",
		Description:   "Information security shall be integrated into project management.",
		DescriptionKo: "프로젝트 관리 절차에 정보보호 검토를 통합해야 합니다.",
	},
	{
		ID:            "A.5.9",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Inventory of information and other associated assets",
		TitleKo:       "정보 및 관련 자산 목록",
		Description:   "An inventory of information and other associated assets, including owners, shall be developed and maintained.",
		DescriptionKo: "소유자를 포함한 정보 자산 목록을 작성하고 유지해야 합니다.",
		Evidence:      "자산 목록 (노트북, 서버, SaaS 계정 포함)",
	},
	{
		ID:            "A.5.10",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Acceptable use of information and other associated assets",
		TitleKo:       "정보 및 관련 자산의 허용 가능한 사용",
		Description:   "Rules for the acceptable use and procedures for handling information and other associated assets shall be identified, documented and implemented.",
		DescriptionKo: "정보 자산의 허용 가능한 사용 규칙과 취급 절차를 문서화하고 시행해야 합니다.",
	},
	{
		ID:            "A.5.11",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Return of assets",
		TitleKo:       "자산 반납",
		Description:   "Personnel and other interested parties as appropriate shall return all the organization's assets in their possession upon change or termination of their employment, contract or agreement.",
		DescriptionKo: "퇴직 또는 계약 종료 시 보유한 회사 자산을 모두 반납해야 합니다.",
	},
	{
		ID:            "A.5.12",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Classification of information",
		TitleKo:       "정보 분류",
		Description:   "Information shall be classified according to the information security needs of the organization based on confidentiality, integrity, availability and relevant interested party requirements.",
		DescriptionKo: "기밀성, 무결성, 가용성 기준으로 정보를 분류해야 합니다.",
	},
	{
		ID:            "A.5.13",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Labelling of information",
		TitleKo:       "정보 라벨링",
		Description:   "An appropriate set of procedures for information labelling shall be developed and implemented in accordance with the information classification scheme adopted by the organization.",
		DescriptionKo: "정보 분류 체계에 따라 라벨링 절차를 수립하고 시행해야 합니다.",
	},
	{
		ID:            "A.5.14",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Information transfer",
		TitleKo:       "정보 전송",
		Description:   "Information transfer rules, procedures, or agreements shall be in place for all types of transfer facilities within the organization and between the organization and other parties.",
		DescriptionKo: "조직 내부 및 외부와의 모든 정보 전송에 대한 규칙과 절차를 마련해야 합니다.",
	},
	{
		ID:            "A.5.15",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Access control",
		TitleKo:       "접근 통제",
		Description:   "Rules to control physical and logical access to information and other associated assets shall be established and implemented based on business and information security requirements.",
		DescriptionKo: "업무 및 보안 요구사항에 기반하여 물리적/논리적 접근 통제 규칙을 수립해야 합니다.",
		Tip:           "1. 접근통제 지침을 작성합니다.\n   - 원칙: 최소 권한, 업무상 필요(Need-to-know)\n2. 주요 시스템(AWS, DB, 어드민) 권한 보유 현황표를 만듭니다.\n3. 분기 1회 권한 검토를 수행하고 기록을 남깁니다.",
		Evidence:      "접근통제 지침, 권한 보유 현황표, 권한 검토 기록",
	},
	{
		ID:            "A.5.16",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Identity management",
		TitleKo:       "신원 관리",
		Description:   "The full life cycle of identities shall be managed.",
		DescriptionKo: "계정의 생성부터 삭제까지 전체 수명주기를 관리해야 합니다.",
	},
	{
		ID:            "A.5.17",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Authentication information",
		TitleKo:       "인증 정보",
		Description:   "Allocation and management of authentication information shall be controlled by a management process, including advising personnel on the appropriate handling of authentication information.",
		DescriptionKo: "비밀번호 등 인증 정보의 할당과 관리를 통제하는 절차가 있어야 합니다.",
	},
	{
		ID:            "A.5.18",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Access rights",
		TitleKo:       "접근 권한",
		Description:   "Access rights to information and other associated assets shall be provisioned, reviewed, modified and removed in accordance with the organization's topic-specific policy on and rules for access control.",
		DescriptionKo: "접근 권한의 부여, 검토, 변경, 회수가 접근통제 정책에 따라 이루어져야 합니다.",
	},
	{
		ID:            "A.5.19",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Information security in supplier relationships",
		TitleKo:       "공급자 관계에서의 정보보호",
		Description:   "Processes and procedures shall be defined and implemented to manage the information security risks associated with the use of supplier's products or services.",
		DescriptionKo: "공급자 제품/서비스 사용과 관련된 보안 위험을 관리하는 절차를 수립해야 합니다.",
	},
	{
		ID:            "A.5.20",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Addressing information security within supplier agreements",
		TitleKo:       "공급자 계약 내 정보보호 반영",
		Description:   "Relevant information security requirements shall be established and agreed with each supplier based on the type of supplier relationship.",
		DescriptionKo: "공급자 계약서에 정보보호 요구사항을 명시하고 합의해야 합니다.",
	},
	{
		ID:            "A.5.21",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Managing information security in the ICT supply chain",
		TitleKo:       "ICT 공급망에서의 정보보호 관리",
		Description:   "Processes and procedures shall be defined and implemented to manage the information security risks associated with the ICT products and services supply chain.",
		DescriptionKo: "ICT 제품 및 서비스 공급망과 관련된 보안 위험을 관리해야 합니다.",
	},
	{
		ID:            "A.5.22",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Monitoring, review and change management of supplier services",
		TitleKo:       "공급자 서비스의 모니터링, 검토 및 변경 관리",
		Description:   "The organization shall regularly monitor, review, evaluate and manage change in supplier information security practices and service delivery.",
		DescriptionKo: "공급자의 보안 수준과 서비스 제공을 정기적으로 모니터링하고 평가해야 합니다.",
	},
	{
		ID:            "A.5.23",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Information security for use of cloud services",
		TitleKo:       "클라우드 서비스 사용을 위한 정보보호",
		Description:   "Processes for acquisition, use, management and exit from cloud services shall be established in accordance with the organization's information security requirements.",
		DescriptionKo: "클라우드 서비스의 도입, 사용, 관리, 해지 절차를 보안 요구사항에 맞게 수립해야 합니다.",
		Tip:           "1. 사용 중인 SaaS/클라우드 목록을 작성합니다. (AWS, 노션, 슬랙 등)\n2. 각 서비스별 보안 설정 체크리스트를 만듭니다.\n   - MFA 적용 여부\n   - 데이터 위치 및 백업 정책\n3. 신규 SaaS 도입 시 보안 검토 절차를 문서화합니다.",
		Evidence:      "클라우드 서비스 목록, 보안 설정 점검표",
	},
	{
		ID:            "A.5.24",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Information security incident management planning and preparation",
		TitleKo:       "정보보호 사고 관리 계획 및 준비",
		Description:   "The organization shall plan and prepare for managing information security incidents by defining, establishing and communicating information security incident management processes, roles and responsibilities.",
		DescriptionKo: "보안 사고 대응 절차와 역할, 책임을 정의하고 전파해야 합니다.",
	},
	{
		ID:            "A.5.25",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Assessment and decision on information security events",
		TitleKo:       "정보보호 이벤트 평가 및 결정",
		Description:   "The organization shall assess information security events and decide if they are to be categorized as information security incidents.",
		DescriptionKo: "보안 이벤트를 평가하여 사고로 분류할지 결정해야 합니다.",
	},
	{
		ID:            "A.5.26",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Response to information security incidents",
		TitleKo:       "정보보호 사고 대응",
		Description:   "Information security incidents shall be responded to in accordance with the documented procedures.",
		DescriptionKo: "문서화된 절차에 따라 보안 사고에 대응해야 합니다.",
	},
	{
		ID:            "A.5.27",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Learning from information security incidents",
		TitleKo:       "정보보호 사고로부터의 학습",
		Description:   "Knowledge gained from information security incidents shall be used to strengthen and improve the information security controls.",
		DescriptionKo: "사고에서 얻은 지식을 통제 개선에 활용해야 합니다.",
	},
	{
		ID:            "A.5.28",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Collection of evidence",
		TitleKo:       "증거 수집",
		Description:   "The organization shall establish and implement procedures for the identification, collection, acquisition and preservation of evidence related to information security events.",
		DescriptionKo: "보안 이벤트 관련 증거의 식별, 수집, 보존 절차를 수립해야 합니다.",
	},
	{
		ID:            "A.5.29",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Information security during disruption",
		TitleKo:       "업무 중단 시 정보보호",
		Description:   "The organization shall plan how to maintain information security at an appropriate level during disruption.",
		DescriptionKo: "업무 중단 상황에서도 적절한 수준의 정보보호를 유지할 계획이 있어야 합니다.",
	},
	{
		ID:            "A.5.30",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "ICT readiness for business continuity",
		TitleKo:       "업무 연속성을 위한 ICT 준비",
		Description:   "ICT readiness shall be planned, implemented, maintained and tested based on business continuity objectives and ICT continuity requirements.",
		DescriptionKo: "업무 연속성 목표에 기반하여 ICT 복구 준비를 계획하고 테스트해야 합니다.",
	},
	{
		ID:            "A.5.31",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Legal, statutory, regulatory and contractual requirements",
		TitleKo:       "법적, 규제 및 계약상 요구사항",
		Description:   "Legal, statutory, regulatory and contractual requirements relevant to information security and the organization's approach to meet these requirements shall be identified, documented and kept up to date.",
		DescriptionKo: "개인정보보호법 등 관련 법규와 계약상 요구사항을 식별하고 최신으로 유지해야 합니다.",
	},
	{
		ID:            "A.5.32",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Intellectual property rights",
		TitleKo:       "지식재산권",
		Description:   "The organization shall implement appropriate procedures to protect intellectual property rights.",
		DescriptionKo: "지식재산권 보호를 위한 적절한 절차를 시행해야 합니다.",
	},
	{
		ID:            "A.5.33",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Protection of records",
		TitleKo:       "기록 보호",
		Description:   "Records shall be protected from loss, destruction, falsification, unauthorized access and unauthorized release.",
		DescriptionKo: "기록은 손실, 파괴, 위조, 무단 접근으로부터 보호되어야 합니다.",
	},
	{
		ID:            "A.5.34",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Privacy and protection of PII",
		TitleKo:       "프라이버시 및 개인정보 보호",
		Description:   "The organization shall identify and meet the requirements regarding the preservation of privacy and protection of PII according to applicable laws and regulations and contractual requirements.",
		DescriptionKo: "관련 법규에 따른 개인정보 보호 요구사항을 식별하고 충족해야 합니다.",
	},
	{
		ID:            "A.5.35",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Independent review of information security",
		TitleKo:       "정보보호 독립 검토",
		Description:   "The organization's approach to managing information security and its implementation shall be reviewed independently at planned intervals, or when significant changes occur.",
		DescriptionKo: "정보보호 관리 체계를 계획된 주기로 독립적으로 검토해야 합니다.",
	},
	{
		ID:            "A.5.36",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Compliance with policies, rules and standards for information security",
		TitleKo:       "정보보호 정책 및 표준 준수",
		Description:   "Compliance with the organization's information security policy, topic-specific policies, rules and standards shall be regularly reviewed.",
		DescriptionKo: "정보보호 정책과 표준의 준수 여부를 정기적으로 검토해야 합니다.",
	},
	{
		ID:            "A.5.37",
		Kind:          KindAnnexA,
		Category:      "A.5",
		Title:         "Documented operating procedures",
		TitleKo:       "문서화된 운영 절차",
		Description:   "Operating procedures for information processing facilities shall be documented and made available to personnel who need them.",
		DescriptionKo: "정보처리 설비의 운영 절차를 문서화하고 필요한 인원에게 제공해야 합니다.",
	},

	// A.6 People controls
	{
		ID:            "A.6.1",
		Kind:          KindAnnexA,
		Category:      "A.6",
		Title:         "Screening",
		TitleKo:       "신원 조회",
		Description:   "Background verification checks on all candidates to become personnel shall be carried out prior to joining the organization and on an ongoing basis.",
		DescriptionKo: "채용 전 및 재직 중 직원의 신원 확인을 수행해야 합니다.",
	},
	{
		ID:            "A.6.2",
		Kind:          KindAnnexA,
		Category:      "A.6",
		Title:         "Terms and conditions of employment",
		TitleKo:       "고용 조건",
		Description:   "The employment contractual agreements shall state the personnel's and the organization's responsibilities for information security.",
		DescriptionKo: "근로계약서에 정보보호 책임을 명시해야 합니다.",
	},
	{
		ID:            "A.6.3",
		Kind:          KindAnnexA,
		Category:      "A.6",
		Title:         "Information security awareness, education and training",
		TitleKo:       "정보보호 인식, 교육 및 훈련",
		Description:   "Personnel of the organization and relevant interested parties shall receive appropriate information security awareness, education and training and regular updates of the organization's information security policy.",
		DescriptionKo: "전 직원이 정기적으로 정보보호 인식 교육을 받아야 합니다.",
		Evidence:      "연간 보안 교육 결과보고서, 이수 확인 기록",
	},
	{
		ID:            "A.6.4",
		Kind:          KindAnnexA,
		Category:      "A.6",
		Title:         "Disciplinary process",
		TitleKo:       "징계 절차",
		Description:   "A disciplinary process shall be formalized and communicated to take actions against personnel who have committed an information security policy violation.",
		DescriptionKo: "보안 정책 위반자에 대한 징계 절차를 공식화하고 전파해야 합니다.",
	},
	{
		ID:            "A.6.5",
		Kind:          KindAnnexA,
		Category:      "A.6",
		Title:         "Responsibilities after termination or change of employment",
		TitleKo:       "퇴직 또는 직무 변경 후 책임",
		Description:   "Information security responsibilities and duties that remain valid after termination or change of employment shall be defined, enforced and communicated to relevant personnel and other interested parties.",
		DescriptionKo: "퇴직 후에도 유효한 비밀 유지 의무를 정의하고 전달해야 합니다.",
	},
	{
		ID:            "A.6.6",
		Kind:          KindAnnexA,
		Category:      "A.6",
		Title:         "Confidentiality or non-disclosure agreements",
		TitleKo:       "비밀유지 계약",
		Description:   "Confidentiality or non-disclosure agreements reflecting the organization's needs for the protection of information shall be identified, documented, regularly reviewed and signed by personnel and other relevant interested parties.",
		DescriptionKo: "임직원 및 외부 관계자와 비밀유지 계약(NDA)을 체결해야 합니다.",
	},
	{
		ID:            "A.6.7",
		Kind:          KindAnnexA,
		Category:      "A.6",
		Title:         "Remote working",
		TitleKo:       "원격 근무",
		Description:   "Security measures shall be implemented when personnel are working remotely to protect information accessed, processed or stored outside the organization's premises.",
		DescriptionKo: "원격 근무 시 회사 외부에서 접근하는 정보를 보호하는 조치를 시행해야 합니다.",
	},
	{
		ID:            "A.6.8",
		Kind:          KindAnnexA,
		Category:      "A.6",
		Title:         "Information security event reporting",
		TitleKo:       "정보보호 이벤트 보고",
		Description:   "The organization shall provide a mechanism for personnel to report observed or suspected information security events through appropriate channels in a timely manner.",
		DescriptionKo: "직원이 보안 이벤트를 적시에 보고할 수 있는 채널을 제공해야 합니다.",
	},

	// A.7 Physical controls
	{
		ID:            "A.7.1",
		Kind:          KindAnnexA,
		Category:      "A.7",
		Title:         "Physical security perimeters",
		TitleKo:       "물리적 보안 경계",
		Description:   "Security perimeters shall be defined and used to protect areas that contain information and other associated assets.",
		DescriptionKo: "정보 자산이 있는 구역을 보호하기 위한 보안 경계를 정의해야 합니다.",
	},
	{
		ID:            "A.7.2",
		Kind:          KindAnnexA,
		Category:      "A.7",
		Title:         "Physical entry",
		TitleKo:       "물리적 출입",
		Description:   "Secure areas shall be protected by appropriate entry controls and access points.",
		DescriptionKo: "보안 구역은 적절한 출입 통제로 보호되어야 합니다.",
	},
	{
		ID:            "A.7.3",
		Kind:          KindAnnexA,
		Category:      "A.7",
		Title:         "Securing offices, rooms and facilities",
		TitleKo:       "사무실 및 시설 보안",
		Description:   "Physical security for offices, rooms and facilities shall be designed and implemented.",
		DescriptionKo: "사무실, 회의실, 시설에 대한 물리적 보안을 설계하고 시행해야 합니다.",
	},
	{
		ID:            "A.7.4",
		Kind:          KindAnnexA,
		Category:      "A.7",
		Title:         "Physical security monitoring",
		TitleKo:       "물리적 보안 모니터링",
		Description:   "Premises shall be continuously monitored for unauthorized physical access.",
		DescriptionKo: "무단 물리적 접근에 대해 구내를 지속적으로 모니터링해야 합니다.",
	},
	{
		ID:            "A.7.5",
		Kind:          KindAnnexA,
		Category:      "A.7",
		Title:         "Protecting against physical and environmental threats",
		TitleKo:       "물리적 및 환경적 위협 대비",
		Description:   "Protection against physical and environmental threats, such as natural disasters and other intentional or unintentional physical threats to infrastructure shall be designed and implemented.",
		DescriptionKo: "자연재해 등 물리적/환경적 위협에 대한 보호를 설계해야 합니다.",
	},
	{
		ID:            "A.7.6",
		Kind:          KindAnnexA,
		Category:      "A.7",
		Title:         "Working in secure areas",
		TitleKo:       "보안 구역에서의 작업",
		Description:   "Security measures for working in secure areas shall be designed and implemented.",
		DescriptionKo: "보안 구역에서의 작업에 대한 보안 조치를 시행해야 합니다.",
	},
	{
		ID:            "A.7.7",
		Kind:          KindAnnexA,
		Category:      "A.7",
		Title:         "Clear desk and clear screen",
		TitleKo:       "클린 데스크 및 클린 스크린",
		Description:   "Clear desk rules for papers and removable storage media and clear screen rules for information processing facilities shall be defined and appropriately enforced.",
		DescriptionKo: "책상 위 문서와 화면 잠금에 대한 규칙을 정의하고 시행해야 합니다.",
		Tip:           "1. 자리 비울 때 화면 잠금(Win+L, Cmd+Ctrl+Q)을 의무화합니다.\n2. OS 자동 잠금 시간을 5분 이내로 설정합니다.\n3. 중요 문서는 퇴근 시 서랍에 보관하도록 공지합니다.",
		Evidence:      "클린 데스크 정책 공지, 화면 자동 잠금 설정 캡처",
	},
	{
		ID:            "A.7.8",
		Kind:          KindAnnexA,
		Category:      "A.7",
		Title:         "Equipment siting and protection",
		TitleKo:       "장비 배치 및 보호",
		Description:   "Equipment shall be sited securely and protected.",
		DescriptionKo: "장비는 안전하게 배치하고 보호해야 합니다.",
	},
	{
		ID:            "A.7.9",
		Kind:          KindAnnexA,
		Category:      "A.7",
		Title:         "Security of assets off-premises",
		TitleKo:       "구외 자산 보안",
		Description:   "Off-site assets shall be protected.",
		DescriptionKo: "회사 외부로 반출된 자산을 보호해야 합니다.",
	},
	{
		ID:            "A.7.10",
		Kind:          KindAnnexA,
		Category:      "A.7",
		Title:         "Storage media",
		TitleKo:       "저장 매체",
		Description:   "Storage media shall be managed through their life cycle of acquisition, use, transportation and disposal in accordance with the organization's classification scheme and handling requirements.",
		DescriptionKo: "저장 매체를 도입부터 폐기까지 수명주기에 걸쳐 관리해야 합니다.",
	},
	{
		ID:            "A.7.11",
		Kind:          KindAnnexA,
		Category:      "A.7",
		Title:         "Supporting utilities",
		TitleKo:       "지원 유틸리티",
		Description:   "Information processing facilities shall be protected from power failures and other disruptions caused by failures in supporting utilities.",
		DescriptionKo: "정전 등 유틸리티 장애로부터 정보처리 설비를 보호해야 합니다.",
	},
	{
		ID:            "A.7.12",
		Kind:          KindAnnexA,
		Category:      "A.7",
		Title:         "Cabling security",
		TitleKo:       "케이블 보안",
		Description:   "Cables carrying power, data or supporting information services shall be protected from interception, interference or damage.",
		DescriptionKo: "전원 및 데이터 케이블을 도청, 간섭, 손상으로부터 보호해야 합니다.",
	},
	{
		ID:            "A.7.13",
		Kind:          KindAnnexA,
		Category:      "A.7",
		Title:         "Equipment maintenance",
		TitleKo:       "장비 유지보수",
		Description:   "Equipment shall be maintained correctly to ensure availability, integrity and confidentiality of information.",
		DescriptionKo: "정보의 가용성과 무결성 확보를 위해 장비를 올바르게 유지보수해야 합니다.",
	},
	{
		ID:            "A.7.14",
		Kind:          KindAnnexA,
		Category:      "A.7",
		Title:         "Secure disposal or re-use of equipment",
		TitleKo:       "장비의 안전한 폐기 또는 재사용",
		Description:   "Items of equipment containing storage media shall be verified to ensure that any sensitive data and licensed software has been removed or securely overwritten prior to disposal or re-use.",
		DescriptionKo: "장비 폐기/재사용 전 민감 데이터가 완전히 삭제되었는지 확인해야 합니다.",
	},

	// A.8 Technological controls
	{
		ID:            "A.8.1",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "User endpoint devices",
		TitleKo:       "사용자 단말 기기",
		Description:   "Information stored on, processed by or accessible via user endpoint devices shall be protected.",
		DescriptionKo: "노트북 등 사용자 단말에 저장되거나 접근되는 정보를 보호해야 합니다.",
	},
	{
		ID:            "A.8.2",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Privileged access rights",
		TitleKo:       "특권 접근 권한",
		Description:   "The allocation and use of privileged access rights shall be restricted and managed.",
		DescriptionKo: "관리자 권한의 할당과 사용을 제한하고 관리해야 합니다.",
	},
	{
		ID:            "A.8.3",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Information access restriction",
		TitleKo:       "정보 접근 제한",
		Description:   "Access to information and other associated assets shall be restricted in accordance with the established topic-specific policy on access control.",
		DescriptionKo: "접근통제 정책에 따라 정보 접근을 제한해야 합니다.",
	},
	{
		ID:            "A.8.4",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Access to source code",
		TitleKo:       "소스 코드 접근",
		Description:   "Read and write access to source code, development tools and software libraries shall be appropriately managed.",
		DescriptionKo: "소스 코드와 개발 도구에 대한 읽기/쓰기 접근을 관리해야 합니다.",
	},
	{
		ID:            "A.8.5",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Secure authentication",
		TitleKo:       "보안 인증",
		Description:   "Secure authentication technologies and procedures shall be implemented based on information access restrictions and the topic-specific policy on access control.",
		DescriptionKo: "MFA 등 안전한 인증 기술과 절차를 구현해야 합니다.",
	},
	{
		ID:            "A.8.6",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Capacity management",
		TitleKo:       "용량 관리",
		Description:   "The use of resources shall be monitored and adjusted in line with current and expected capacity requirements.",
		DescriptionKo: "리소스 사용을 모니터링하고 용량 요구사항에 맞게 조정해야 합니다.",
	},
	{
		ID:            "A.8.7",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Protection against malware",
		TitleKo:       "악성코드 방지",
		Description:   "Protection against malware shall be implemented and supported by appropriate user awareness.",
		DescriptionKo: "악성코드 방지 대책을 구현하고 사용자 인식 교육으로 뒷받침해야 합니다.",
	},
	{
		ID:            "A.8.8",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Management of technical vulnerabilities",
		TitleKo:       "기술적 취약점 관리",
		Description:   "Information about technical vulnerabilities of information systems in use shall be obtained, the organization's exposure to such vulnerabilities shall be evaluated and appropriate measures shall be taken.",
		DescriptionKo: "사용 중인 시스템의 기술적 취약점 정보를 수집하고 적절한 조치를 취해야 합니다.",
		Tip:           "1. 분기 1회 취약점 스캔을 수행합니다. (Trivy, Nuclei 등 오픈소스 활용 가능)\n2. 발견된 취약점을 심각도별로 분류하고 조치 기한을 정합니다.\n   - Critical: 즉시 / High: 1주 / Medium: 1개월\n3. 조치 완료 이력을 티켓으로 남깁니다.",
		Evidence:      "취약점 스캔 보고서, 조치 이력 티켓",
	},
	{
		ID:            "A.8.9",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Configuration management",
		TitleKo:       "구성 관리",
		Description:   "Configurations, including security configurations, of hardware, software, services and networks shall be established, documented, implemented, monitored and reviewed.",
		DescriptionKo: "하드웨어, 소프트웨어, 네트워크의 보안 구성을 수립하고 검토해야 합니다.",
	},
	{
		ID:            "A.8.10",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Information deletion",
		TitleKo:       "정보 삭제",
		Description:   "Information stored in information systems, devices or in any other storage media shall be deleted when no longer required.",
		DescriptionKo: "더 이상 필요하지 않은 정보는 삭제해야 합니다.",
	},
	{
		ID:            "A.8.11",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Data masking",
		TitleKo:       "데이터 마스킹",
		Description:   "Data masking shall be used in accordance with the organization's topic-specific policy on access control and other related topic-specific policies, and business requirements, taking applicable legislation into consideration.",
		DescriptionKo: "접근통제 정책과 법규를 고려하여 데이터 마스킹을 적용해야 합니다.",
	},
	{
		ID:            "A.8.12",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Data leakage prevention",
		TitleKo:       "데이터 유출 방지",
		Description:   "Data leakage prevention measures shall be applied to systems, networks and any other devices that process, store or transmit sensitive information.",
		DescriptionKo: "민감 정보를 처리하는 시스템에 데이터 유출 방지 조치를 적용해야 합니다.",
	},
	{
		ID:            "A.8.13",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Information backup",
		TitleKo:       "정보 백업",
		Description:   "Backup copies of information, software and systems shall be maintained and regularly tested in accordance with the agreed topic-specific policy on backup.",
		DescriptionKo: "정보, 소프트웨어, 시스템의 백업을 유지하고 정기적으로 복구를 테스트해야 합니다.",
		Tip:           "1. 백업 정책을 정합니다. (대상, 주기, 보관 기간)\n   - 운영 DB: 일 1회 자동 스냅샷, 30일 보관\n2. 반기 1회 복구 테스트를 수행하고 결과를 기록합니다.\n3. 증적: RDS 자동 백업 설정 캡처, 복구 테스트 결과서",
		Evidence:      "백업 정책, 자동 백업 설정 캡처, 복구 테스트 결과서",
	},
	{
		ID:            "A.8.14",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Redundancy of information processing facilities",
		TitleKo:       "정보처리 설비의 이중화",
		Description:   "Information processing facilities shall be implemented with redundancy sufficient to meet availability requirements.",
		DescriptionKo: "가용성 요구사항을 충족하도록 정보처리 설비를 이중화해야 합니다.",
	},
	{
		ID:            "A.8.15",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Logging",
		TitleKo:       "로깅",
		Description:   "Logs that record activities, exceptions, faults and other relevant events shall be produced, stored, protected and analysed.",
		DescriptionKo: "활동, 예외, 장애를 기록하는 로그를 생성, 보관, 보호, 분석해야 합니다.",
	},
	{
		ID:            "A.8.16",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Monitoring activities",
		TitleKo:       "모니터링 활동",
		Description:   "Networks, systems and applications shall be monitored for anomalous behaviour and appropriate actions taken to evaluate potential information security incidents.",
		DescriptionKo: "네트워크와 시스템의 이상 행위를 모니터링하고 평가해야 합니다.",
	},
	{
		ID:            "A.8.17",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Clock synchronization",
		TitleKo:       "시간 동기화",
		Description:   "The clocks of information processing systems used by the organization shall be synchronized to approved time sources.",
		DescriptionKo: "시스템 시계를 승인된 시간 소스와 동기화해야 합니다.",
	},
	{
		ID:            "A.8.18",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Use of privileged utility programs",
		TitleKo:       "특권 유틸리티 프로그램 사용",
		Description:   "The use of utility programs that can be capable of overriding system and application controls shall be restricted and tightly controlled.",
		DescriptionKo: "시스템 통제를 우회할 수 있는 유틸리티 사용을 엄격히 통제해야 합니다.",
	},
	{
		ID:            "A.8.19",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Installation of software on operational systems",
		TitleKo:       "운영 시스템 소프트웨어 설치",
		Description:   "Procedures and measures shall be implemented to securely manage software installation on operational systems.",
		DescriptionKo: "운영 시스템에 대한 소프트웨어 설치를 안전하게 관리해야 합니다.",
	},
	{
		ID:            "A.8.20",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Networks security",
		TitleKo:       "네트워크 보안",
		Description:   "Networks and network devices shall be secured, managed and controlled to protect information in systems and applications.",
		DescriptionKo: "시스템 내 정보를 보호하기 위해 네트워크와 장비를 보호하고 통제해야 합니다.",
	},
	{
		ID:            "A.8.21",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Security of network services",
		TitleKo:       "네트워크 서비스 보안",
		Description:   "Security mechanisms, service levels and service requirements of network services shall be identified, implemented and monitored.",
		DescriptionKo: "네트워크 서비스의 보안 메커니즘과 서비스 수준을 식별하고 모니터링해야 합니다.",
	},
	{
		ID:            "A.8.22",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Segregation of networks",
		TitleKo:       "네트워크 분리",
		Description:   "Groups of information services, users and information systems shall be segregated in the organization's networks.",
		DescriptionKo: "정보 서비스, 사용자, 시스템 그룹을 네트워크에서 분리해야 합니다.",
	},
	{
		ID:            "A.8.23",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Web filtering",
		TitleKo:       "웹 필터링",
		Description:   "Access to external websites shall be managed to reduce exposure to malicious content.",
		DescriptionKo: "악성 콘텐츠 노출을 줄이기 위해 외부 웹사이트 접근을 관리해야 합니다.",
	},
	{
		ID:            "A.8.24",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Use of cryptography",
		TitleKo:       "암호화 사용",
		Description:   "Rules for the effective use of cryptography, including cryptographic key management, shall be defined and implemented.",
		DescriptionKo: "키 관리를 포함한 암호화 사용 규칙을 정의하고 구현해야 합니다.",
		Tip:           "1. 암호화 지침을 작성합니다.\n   - 전송 구간: TLS 1.2 이상\n   - 저장 데이터: AES-256 (RDS/S3 암호화 옵션)\n   - 비밀번호: bcrypt 등 단방향 해시\n2. 키 관리: AWS KMS 사용 현황을 캡처해 둡니다.",
		Evidence:      "암호화 지침, KMS/스토리지 암호화 설정 캡처",
	},
	{
		ID:            "A.8.25",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Secure development life cycle",
		TitleKo:       "보안 개발 수명주기",
		Description:   "Rules for the secure development of software and systems shall be established and applied.",
		DescriptionKo: "소프트웨어와 시스템의 보안 개발 규칙을 수립하고 적용해야 합니다.",
	},
	{
		ID:            "A.8.26",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Application security requirements",
		TitleKo:       "애플리케이션 보안 요구사항",
		Description:   "Information security requirements shall be identified, specified and approved when developing or acquiring applications.",
		DescriptionKo: "애플리케이션 개발/도입 시 보안 요구사항을 식별하고 승인해야 합니다.",
	},
	{
		ID:            "A.8.27",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Secure system architecture and engineering principles",
		TitleKo:       "보안 시스템 아키텍처 및 엔지니어링 원칙",
		Description:   "Principles for engineering secure systems shall be established, documented, maintained and applied to any information system development activities.",
		DescriptionKo: "보안 시스템 엔지니어링 원칙을 수립하고 개발 활동에 적용해야 합니다.",
	},
	{
		ID:            "A.8.28",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Secure coding",
		TitleKo:       "시큐어 코딩",
		Description:   "Secure coding principles shall be applied to software development.",
		DescriptionKo: "소프트웨어 개발에 시큐어 코딩 원칙을 적용해야 합니다.",
	},
	{
		ID:            "A.8.29",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Security testing in development and acceptance",
		TitleKo:       "개발 및 인수 단계의 보안 테스트",
		Description:   "Security testing processes shall be defined and implemented in the development life cycle.",
		DescriptionKo: "개발 수명주기에 보안 테스트 절차를 정의하고 시행해야 합니다.",
	},
	{
		ID:            "A.8.30",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Outsourced development",
		TitleKo:       "외주 개발",
		Description:   "The organization shall direct, monitor and review the activities related to outsourced system development.",
		DescriptionKo: "외주 시스템 개발 활동을 지시, 모니터링, 검토해야 합니다.",
	},
	{
		ID:            "A.8.31",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Separation of development, test and production environments",
		TitleKo:       "개발, 테스트, 운영 환경의 분리",
		Description:   "Development, testing and production environments shall be separated and secured.",
		DescriptionKo: "개발, 테스트, 운영 환경을 분리하고 보호해야 합니다.",
	},
	{
		ID:            "A.8.32",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Change management",
		TitleKo:       "변경 관리",
		Description:   "Changes to information processing facilities and information systems shall be subject to change management procedures.",
		DescriptionKo: "정보처리 설비와 시스템 변경은 변경 관리 절차를 따라야 합니다.",
	},
	{
		ID:            "A.8.33",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Test information",
		TitleKo:       "테스트 정보",
		Description:   "Test information shall be appropriately selected, protected and managed.",
		DescriptionKo: "테스트 데이터를 적절히 선정하고 보호해야 합니다.",
	},
	{
		ID:            "A.8.34",
		Kind:          KindAnnexA,
		Category:      "A.8",
		Title:         "Protection of information systems during audit testing",
		TitleKo:       "감사 테스트 중 정보 시스템 보호",
		Description:   "Audit tests and other assurance activities involving assessment of operational systems shall be planned and agreed between the tester and appropriate management.",
		DescriptionKo: "운영 시스템에 대한 감사 테스트는 사전에 계획하고 합의해야 합니다.",
	},
}
